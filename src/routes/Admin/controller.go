package admin

import (
	"net/http"

	"github.com/go-chi/render"

	contact "portfolio-backend/src/routes/Contact"
	"portfolio-backend/utils"
)

// Listings are capped; the admin view only needs the recent tail.
const listCap = 100

type AdminHandler struct {
	Store *contact.Store
}

type contactListResponse struct {
	Success     bool                 `json:"success"`
	Submissions []contact.Submission `json:"submissions"`
}

func (a AdminHandler) ListContactSubmissions(w http.ResponseWriter, r *http.Request) {
	submissions, err := a.Store.ListRecent(listCap)
	if err != nil {
		errMsg := "Failed to fetch contact submissions"
		utils.HandleError(utils.ErrInternal, err, w, &errMsg)
		return
	}

	render.JSON(w, r, contactListResponse{Success: true, Submissions: submissions})
}
