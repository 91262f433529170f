package httputil

import (
	"errors"
	"io"
	"strconv"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	ErrRequestBodyEmpty = errors.New("O corpo da requisição não pode ser vazio")
	ErrInvalidBody      = errors.New("O corpo da requisição contém dados inválidos")
	ErrInvalidID        = errors.New("O id informado na URL não é um número válido")
)

// BindData binds the JSON body of the request to the struct passed in.
// The returned error is safe to show to users.
func BindData(c *gin.Context, data any) error {
	err := c.ShouldBindJSON(data)
	if err == nil {
		return nil
	}

	if errors.Is(err, io.EOF) {
		return ErrRequestBodyEmpty
	}

	log.Error().Str("request-id", requestid.Get(c)).Msgf("%T: %v", err, err.Error())
	return ErrInvalidBody
}

// ParseID parses the named URL parameter as a numeric resource ID.
func ParseID(c *gin.Context, param string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}

	return id, nil
}
