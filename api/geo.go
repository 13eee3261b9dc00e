package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpconnect/helpconnect-api/external/geocoding"
)

// resolveAddress is the API proxying the geocoding lookup, so clients never
// talk to the upstream geocoder directly
func (s *Server) resolveAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	point, err := s.geocoder.Geocode(c.Request.Context(), address)
	if err != nil {
		if err == geocoding.ErrNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorLocationNotResolved)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"latitude":  point.Latitude,
		"longitude": point.Longitude,
	})
}
