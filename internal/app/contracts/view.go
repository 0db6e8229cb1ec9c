package contracts

import "net/http"

type PageRenderer interface {
	Render(w http.ResponseWriter, status int, page string, data interface{}) error
}
