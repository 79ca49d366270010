package user

import (
	"net/http"

	"github.com/go-chi/render"
)

func (u UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, ProfileResponse{Success: true, Data: DefaultProfile})
}
