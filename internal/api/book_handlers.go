package api

import (
	"net/http"
	"strconv"

	"github.com/shelfmarkapp/shelfmark-server/internal/domain"
	"github.com/shelfmarkapp/shelfmark-server/internal/http/response"
	"github.com/shelfmarkapp/shelfmark-server/internal/service"
)

// handleListBooks returns a page of the catalogue.
func (s *Server) handleListBooks(w http.ResponseWriter, r *http.Request) {
	books, err := s.bookService.ListBooks(r.Context(), parsePageParams(r))
	if err != nil {
		s.logger.Error("Failed to list books", "error", err)
		response.InternalError(w, "Failed to retrieve books", s.logger)
		return
	}

	response.Success(w, books, s.logger)
}

// handleGetBook returns a single book by ID.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	book, err := s.bookService.GetBook(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleSearchBooks returns every book matching the query parameters.
// Text criteria match case-insensitive substrings; rating is an inclusive
// minimum. All supplied criteria must hold at once.
func (s *Server) handleSearchBooks(w http.ResponseWriter, r *http.Request) {
	var filter domain.BookFilter
	q := r.URL.Query()

	if title := q.Get("title"); title != "" {
		filter.Title = &title
	}
	if author := q.Get("author"); author != "" {
		filter.Author = &author
	}
	if genre := q.Get("genre"); genre != "" {
		filter.Genre = &genre
	}
	if ratingStr := q.Get("rating"); ratingStr != "" {
		rating, err := strconv.ParseFloat(ratingStr, 64)
		if err != nil {
			response.BadRequest(w, "invalid rating", s.logger)
			return
		}
		filter.MinRating = &rating
	}

	books, err := s.bookService.SearchBooks(r.Context(), filter)
	if err != nil {
		s.logger.Error("Failed to search books", "error", err)
		response.InternalError(w, "Failed to search books", s.logger)
		return
	}

	response.Success(w, books, s.logger)
}

// handleCreateBook adds a book to the catalogue.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	var req service.BookRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "invalid JSON body", s.logger)
		return
	}

	book, err := s.bookService.CreateBook(r.Context(), req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleUpdateBook replaces every field of an existing book.
func (s *Server) handleUpdateBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	var req service.BookRequest
	if err := decodeJSON(r, &req); err != nil {
		response.BadRequest(w, "invalid JSON body", s.logger)
		return
	}

	book, err := s.bookService.UpdateBook(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleDeleteBook removes a book and returns the record as it was before
// deletion.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "bookID")
	if !ok {
		response.BadRequest(w, "invalid book id", s.logger)
		return
	}

	book, err := s.bookService.DeleteBook(r.Context(), id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}
