package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"frontrow/src/db"
	"frontrow/src/lib"
	"frontrow/src/models"
	"frontrow/src/types"
	"frontrow/src/utils"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// identityMatches ties the account named in the request body to the
// identity the ID-token middleware verified. A session token is only
// ever minted for the caller's own account.
func identityMatches(tokenUID, accountUID string) bool {
	return tokenUID != "" && tokenUID == accountUID
}

// AuthLogin exchanges a verified identity-provider token for a
// first-party session token. The local user row is created on first
// login so the identity provider stays the source of truth for signup.
func AuthLogin(ctx *gin.Context) (token *string, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	auth, err := lib.GetFirebaseAuth()
	if err != nil {
		log.Printf("Error initializing FirebaseAuth client: %s\n", err.Error())
		return nil, http.StatusBadRequest, err
	}
	user, err := auth.GetUserByEmail(context.Background(), body.Email)
	if err != nil {
		log.Printf("error from Firebase: %s\n", err.Error())
		return nil, http.StatusNotFound, err
	}
	if !identityMatches(ctx.GetString("uid"), user.UID) {
		err := errors.New("authenticated identity does not match the requested account")
		log.Printf("Login rejected for [%s]: %s\n", body.Email, err.Error())
		return nil, http.StatusForbidden, err
	}

	db := db.GetDb()
	var muser *models.User
	err = db.Transaction(func(tx *gorm.DB) error {
		muser, err = models.FirstOrCreateByEmail(tx, user.Email, user.DisplayName, user.PhotoURL, user.UID)
		if err != nil {
			return err
		}
		if err := tx.
			Model(&models.User{}).
			Where("id", muser.ID).
			Update("last_active", time.Now()).
			Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		log.Printf("Error logging in user [%s]: %s\n", body.Email, err.Error())
		return nil, http.StatusBadRequest, err
	}

	jwt, err := utils.GenerateJWT(muser.Email, muser.ID, muser.Role)
	if err != nil {
		log.Printf("Error generating token for user [%d]: %s\n", muser.ID, err.Error())
		return nil, http.StatusInternalServerError, err
	}

	if rd := lib.GetRedisClient(); rd != nil {
		cached, err := json.Marshal(&muser)
		if err == nil {
			if err := rd.Set(ctx, fmt.Sprintf("%d:user", muser.ID), cached, 24*time.Hour).Err(); err != nil {
				log.Printf("[redis] Error updating user cache: %s\n", err.Error())
			}
		}
	}

	return &jwt, http.StatusOK, nil
}

// AuthRegister provisions a local row for an identity-provider account
// ahead of first login.
func AuthRegister(ctx *gin.Context) (uid *string, status int, err error) {
	var body types.RegisterUserRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		return nil, http.StatusBadRequest, err
	}
	auth, err := lib.GetFirebaseAuth()
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	user, err := auth.GetUserByEmail(context.Background(), body.Email)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}

	db := db.GetDb()
	err = db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		if err := tx.
			Model(&models.User{}).
			Select("id").
			Where("email = ?", body.Email).
			First(&existing).
			Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.New("could not complete transaction")
			}
		}
		if existing.ID > 0 {
			err := errors.New("user is already registered in the system. Please proceed to Log In")
			log.Printf("error: %s\n", err.Error())
			return err
		}

		newUser := models.User{
			Email:    user.Email,
			UID:      user.UID,
			Role:     types.ROLE_USER,
			Name:     user.DisplayName,
			ImageURL: user.PhotoURL,
		}
		if err := tx.Create(&newUser).Error; err != nil {
			log.Printf("Error creating user: %s\n", err.Error())
			return err
		}
		return nil
	})
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return &user.UID, http.StatusCreated, nil
}

// AuthLogout stamps last activity and drops the cached session state.
func AuthLogout(ctx *gin.Context) (status int, err error) {
	id := ctx.GetUint("id")
	uid := ctx.GetString("uid")
	db := db.GetDb()
	if err := db.
		Model(&models.User{}).
		Where("id", id).
		Update("last_active", time.Now()).
		Error; err != nil {
		log.Printf("Error updating last_active for user [%d]: %s\n", id, err.Error())
	}
	if rd := lib.GetRedisClient(); rd != nil {
		rd.Del(context.Background(), fmt.Sprintf("%d:user", id))
		if uid != "" {
			rd.Del(context.Background(), fmt.Sprintf("%s:token", uid))
		}
	}
	return http.StatusOK, nil
}
