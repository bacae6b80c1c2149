package http

import (
	"net/http"
	"slices"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/pkg/campussdk"
	"github.com/aussiebroadwan/campus/pkg/httpx"
)

// SectionsHandler godoc
//
//	@Summary		List sections
//	@Description	Returns the suggested section catalogue. Sections are free text when posting.
//	@Tags			Queries
//	@Produce		json
//	@Success		200	{object}	campussdk.SectionsResponse	"sections"
//	@Router			/sections [get].
func SectionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, campussdk.SectionsResponse{
			Sections: slices.Clone(domain.DefaultSections),
		})
	}
}
