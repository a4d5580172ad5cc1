package api

import (
	"net/http"

	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// handleCreateUser registers a new account. The password hash never
// appears in the response body.
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "invalid JSON body", s.logger)
		return
	}

	user, err := s.userService.Register(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, user, s.logger)
}

// handleAddBookToUser links a book to a user's reading list.
func (s *Server) handleAddBookToUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		response.BadRequest(w, "invalid user id", s.logger)
		return
	}
	bookID, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	link, err := s.userService.AddBookToUser(r.Context(), userID, bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, link, s.logger)
}

// handleIsBookInUserList reports whether the book appears in the user's
// reading list. The body is a bare JSON boolean.
func (s *Server) handleIsBookInUserList(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		response.BadRequest(w, "invalid user id", s.logger)
		return
	}
	bookID, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	inList, err := s.userService.IsBookInUserList(r.Context(), userID, bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, inList, s.logger)
}

// handleRemoveBookFromUser removes one link between a user and a book and
// returns it.
func (s *Server) handleRemoveBookFromUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := idParam(r, "userID")
	if !ok {
		response.BadRequest(w, "invalid user id", s.logger)
		return
	}
	bookID, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	link, err := s.userService.RemoveBookFromUser(r.Context(), userID, bookID)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, link, s.logger)
}
