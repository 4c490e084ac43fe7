package api

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/sacavia/sacavia-api/consts"
	"github.com/sacavia/sacavia-api/utils"
)

func init() {
	// report query parameter names instead of struct field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// errCoordinatesPair reports a latitude without longitude or the reverse
var errCoordinatesPair = fmt.Errorf("latitude and longitude must be provided together")

type pageParams struct {
	Page  int `form:"page" binding:"min=1"`
	Limit int `form:"limit" binding:"min=1,max=50"`
}

type originParams struct {
	Latitude  *float64 `form:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude *float64 `form:"longitude" binding:"omitempty,min=-180,max=180"`
	Radius    float64  `form:"radius" binding:"min=1,max=100"`
	Near      string   `form:"near"`
}

func (p originParams) validate() error {
	if (p.Latitude == nil) != (p.Longitude == nil) {
		return errCoordinatesPair
	}
	return nil
}

type locationParams struct {
	pageParams
	originParams

	Search     string   `form:"search"`
	Category   string   `form:"category"`
	PriceRange string   `form:"priceRange" binding:"omitempty,oneof=free budget moderate expensive luxury"`
	Rating     *float64 `form:"rating" binding:"omitempty,min=1,max=5"`
	SortBy     string   `form:"sortBy" binding:"oneof=distance rating popularity name createdAt"`
	IsOpen     *bool    `form:"isOpen"`
}

func defaultLocationParams() locationParams {
	return locationParams{
		pageParams: pageParams{
			Page:  1,
			Limit: consts.DefaultPageLimit,
		},
		originParams: originParams{
			Radius: consts.DefaultSearchRadius,
		},
		SortBy: consts.SortByDistance,
	}
}

type searchParams struct {
	originParams

	Query string `form:"q"`
	Type  string `form:"type" binding:"oneof=all users locations events posts"`
	Limit int    `form:"limit" binding:"min=1,max=50"`
}

func defaultSearchParams() searchParams {
	return searchParams{
		originParams: originParams{
			Radius: consts.DefaultSearchRadius,
		},
		Type:  consts.SearchAll,
		Limit: consts.DefaultSearchLimit,
	}
}

const minQueryLength = 2

// validationMessage describes the first failed check of a binding error
func validationMessage(c *gin.Context, err error) string {
	loc := localizer(c)

	if err == errCoordinatesPair {
		return err.Error()
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return utils.Localize(loc, "error.validation", nil)
	}

	fe := errs[0]
	data := map[string]interface{}{
		"Field": fe.Field(),
		"Param": strings.Replace(fe.Param(), " ", ", ", -1),
	}

	switch fe.Tag() {
	case "required", "min", "max", "oneof":
		return utils.Localize(loc, "error.validation."+fe.Tag(), data)
	default:
		return utils.Localize(loc, "error.validation.invalid", data)
	}
}

// queryMessage checks the search text and describes its problem, if any
func queryMessage(c *gin.Context, q string) string {
	data := map[string]interface{}{
		"Field": "q",
		"Param": minQueryLength,
	}

	switch {
	case q == "":
		return utils.Localize(localizer(c), "error.validation.required", data)
	case len([]rune(q)) < minQueryLength:
		return utils.Localize(localizer(c), "error.validation.min_length", data)
	}

	return ""
}

func (s *Server) abortWithValidation(c *gin.Context, message string, errors ...error) {
	s.countError(c, codeValidation)
	abortWithEncoding(c, errorStatus(codeValidation), errorMessage(codeValidation, message), errors...)
}
