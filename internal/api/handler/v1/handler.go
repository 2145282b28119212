package v1

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/api/middleware"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/service"
)

const maxImageSize = 5 << 20

var errImageTooLarge = fmt.Errorf("image must be at most %d MB: %w", maxImageSize>>20, domain.ErrValidation)

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func getActor(ctx *gin.Context) (domain.Actor, *response.Err) {
	actor, err := middleware.Actor(ctx)
	if err != nil {
		return domain.Actor{}, response.ErrUnauthorized(err)
	}
	return actor, nil
}

func parseID(ctx *gin.Context, param string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(param), 10, 32)
	if err != nil || id == 0 {
		return 0, response.ErrBadRequest(domain.NewValidationError(param, "must be a positive integer"))
	}
	return uint(id), nil
}

// renderErr renders a service error, wrapping it with the calling site for the logs.
func renderErr(ctx *gin.Context, site string, err error) {
	response.RenderErr(ctx, response.FromDomain(fmt.Errorf("%s -> %w", site, err)))
}

// readImage returns the optional "image" multipart file.
func readImage(ctx *gin.Context) (*service.Image, error) {
	header, err := ctx.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("ctx.FormFile -> %w", err)
	}
	if header.Size > maxImageSize {
		return nil, errImageTooLarge
	}

	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("header.Open -> %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}
	if len(data) > maxImageSize {
		return nil, errImageTooLarge
	}

	return &service.Image{Name: header.Filename, Data: data}, nil
}
