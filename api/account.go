package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"

	"github.com/helpconnect/helpconnect-api/schema"
)

// accountDetail is the API to query the caller's own account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateProfile is the API to update profile fields for a user
func (s *Server) accountUpdateProfile(c *gin.Context) {
	accountID := c.GetString("requester")

	var params struct {
		FullName *string  `json:"full_name"`
		Bio      *string  `json:"bio"`
		Location *string  `json:"location"`
		Language *string  `json:"language"`
		Skills   []string `json:"skills"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	fields := map[string]interface{}{}
	if params.FullName != nil {
		fields["full_name"] = *params.FullName
	}
	if params.Bio != nil {
		fields["bio"] = *params.Bio
	}
	if params.Location != nil {
		fields["location"] = *params.Location
	}
	if params.Language != nil {
		fields["language"] = *params.Language
	}
	if params.Skills != nil {
		fields["skills"] = schema.StringList(params.Skills)
	}

	if err := s.store.UpdateAccountProfile(accountID, fields); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// accountPublicProfile is the API to view another user's profile. Only the
// public projection leaves the server.
func (s *Server) accountPublicProfile(c *gin.Context) {
	id := c.Param("accountID")

	account, err := s.store.GetAccount(id)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account.Public(),
	})
}

// accountDelete is the API to remove an account from our service
func (s *Server) accountDelete(c *gin.Context) {
	accountID := c.GetString("requester")

	if err := s.store.DeleteAccount(accountID); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
