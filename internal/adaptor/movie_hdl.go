package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"movie-catalog/internal/data/entity"
	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/dto/response"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/mediator"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type MovieHandler struct {
	mediator *mediator.Mediator
	policy   usecase.TitleLockPolicy
	log      *zap.Logger
}

func NewMovieHandler(m *mediator.Mediator, policy usecase.TitleLockPolicy, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		mediator: m,
		policy:   policy,
		log:      log.With(zap.String("handler", "movie")),
	}
}

// GetMovies godoc
// @Summary      List all movies
// @Tags         movies
// @Produce      json
// @Success      200  {array}   response.MovieResponse
// @Failure      404  {object}  response.ErrorResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies [get]
func (h *MovieHandler) GetMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := mediator.Send[[]*entity.Movie](r.Context(), h.mediator, usecase.GetAllMoviesQuery{})
	if err != nil {
		h.internalError(w, err, "get movies")
		return
	}

	if movies == nil {
		utils.ResponseNotFound(w, response.ErrorResponse{Code: response.CodeNotFound, Message: "No movies available"})
		return
	}

	utils.ResponseSuccess(w, response.MoviesToResponse(movies))
}

// GetMovieByID godoc
// @Summary      Get a movie by id
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  response.MovieResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.MovieNotFoundResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies/{id} [get]
func (h *MovieHandler) GetMovieByID(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err == nil {
		err = usecase.ValidateLookupID(id)
	}
	if err != nil {
		h.log.Debug("Rejected movie id", zap.String("id", chi.URLParam(r, "id")))
		utils.ResponseBadRequest(w, response.InvalidIDResponse())
		return
	}

	movie, err := mediator.Send[*entity.Movie](r.Context(), h.mediator, usecase.GetMovieByIDQuery{ID: id})
	if err != nil {
		h.internalError(w, err, "get movie by ID")
		return
	}

	if movie == nil {
		utils.ResponseNotFound(w, response.NewMovieNotFoundResponse(id))
		return
	}

	utils.ResponseSuccess(w, response.MovieToResponse(movie))
}

// CreateMovie godoc
// @Summary      Create a movie
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        movie  body      request.PostMovieRequest  true  "Movie"
// @Success      200    {object}  response.MovieResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /api/movies [post]
func (h *MovieHandler) CreateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.PostMovieRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("Rejected request body", zap.Error(err))
		utils.ResponseBadRequest(w, response.InvalidBodyResponse())
		return
	}

	if err := usecase.ValidateMovieFields(req.Fields()); err != nil {
		h.badRequest(w, err, "create movie")
		return
	}

	movie, err := mediator.Send[*entity.Movie](r.Context(), h.mediator, usecase.PostMovieCommand{MovieFields: req.Fields()})
	if err != nil {
		h.internalError(w, err, "create movie")
		return
	}

	utils.ResponseSuccess(w, response.MovieToResponse(movie))
}

// UpdateMovie godoc
// @Summary      Update a movie
// @Description  The target id travels in the body.
// @Tags         movies
// @Accept       json
// @Produce      json
// @Param        movie  body      request.PatchMovieRequest  true  "Movie"
// @Success      200    {object}  response.PatchMovieSuccessResponse
// @Failure      400    {object}  response.ErrorResponse
// @Failure      404    {object}  response.MovieNotFoundResponse
// @Failure      500    {object}  response.ErrorResponse
// @Router       /api/movies [patch]
func (h *MovieHandler) UpdateMovie(w http.ResponseWriter, r *http.Request) {
	var req request.PatchMovieRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.log.Debug("Rejected request body", zap.Error(err))
		utils.ResponseBadRequest(w, response.InvalidBodyResponse())
		return
	}

	if !h.checkTitleLock(w, r, req.MovieID, "update movie") {
		return
	}

	err := usecase.ValidateTargetID(req.MovieID)
	if err == nil {
		err = usecase.ValidateMovieFields(req.Fields())
	}
	if err != nil {
		h.badRequest(w, err, "update movie")
		return
	}

	cmd := usecase.PatchMovieCommand{MovieID: req.MovieID, MovieFields: req.Fields()}
	movie, err := mediator.Send[*entity.Movie](r.Context(), h.mediator, cmd)
	if err != nil {
		h.internalError(w, err, "update movie")
		return
	}

	if movie == nil {
		utils.ResponseNotFound(w, response.NewMovieNotFoundResponse(req.MovieID))
		return
	}

	utils.ResponseSuccess(w, response.NewPatchMovieSuccessResponse(req.MovieID))
}

// DeleteMovie godoc
// @Summary      Delete a movie
// @Tags         movies
// @Produce      json
// @Param        id   path      int  true  "Movie ID"
// @Success      200  {object}  response.MovieResponse
// @Failure      400  {object}  response.ErrorResponse
// @Failure      404  {object}  response.MovieNotFoundResponse
// @Failure      500  {object}  response.ErrorResponse
// @Router       /api/movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(w http.ResponseWriter, r *http.Request) {
	id, err := utils.ParseID(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, response.InvalidIDResponse())
		return
	}

	if !h.checkTitleLock(w, r, id, "delete movie") {
		return
	}

	movie, err := mediator.Send[*entity.Movie](r.Context(), h.mediator, usecase.DeleteMovieCommand{MovieID: id})
	if err != nil {
		h.internalError(w, err, "delete movie")
		return
	}

	if movie == nil {
		utils.ResponseNotFound(w, response.NewMovieNotFoundResponse(id))
		return
	}

	utils.ResponseSuccess(w, response.MovieToResponse(movie))
}

// checkTitleLock loads the current record and applies the title lock policy.
// It writes the response and returns false when the request must stop.
func (h *MovieHandler) checkTitleLock(w http.ResponseWriter, r *http.Request, id int64, operation string) bool {
	existing, err := mediator.Send[*entity.Movie](r.Context(), h.mediator, usecase.GetMovieByIDQuery{ID: id})
	if err != nil {
		h.internalError(w, err, operation)
		return false
	}

	if err := h.policy.Check(existing); err != nil {
		h.log.Warn(operation+" rejected by title lock",
			zap.Int64("movie_id", id),
			zap.String("title", existing.Title),
		)
		utils.ResponseBadRequest(w, response.TitleLockedResponse(usecase.TitleLockMessage))
		return false
	}
	return true
}

func (h *MovieHandler) badRequest(w http.ResponseWriter, err error, operation string) {
	h.log.Debug(operation+" validation failed", zap.Error(err))
	utils.ResponseBadRequest(w, validationResponse(err))
}

func (h *MovieHandler) internalError(w http.ResponseWriter, err error, operation string) {
	h.log.Error("Failed to "+operation,
		zap.Error(err),
		zap.String("operation", operation),
	)
	utils.ResponseInternalError(w, response.InternalErrorResponse())
}

// decodeJSON reads a single JSON value of at most maxBodyBytes into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decode body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

func validationResponse(err error) response.ErrorResponse {
	switch {
	case errors.Is(err, usecase.ErrInvalidID):
		return response.InvalidIDResponse()
	case errors.Is(err, usecase.ErrInvalidYear):
		return response.InvalidYearResponse()
	case errors.Is(err, usecase.ErrInvalidPrice):
		return response.InvalidPriceResponse()
	case errors.Is(err, usecase.ErrInvalidAgeRestriction):
		return response.InvalidAgeRestrictionResponse()
	case errors.Is(err, usecase.ErrInvalidTitle):
		return response.InvalidTitleResponse()
	default:
		return response.ErrorResponse{Code: "BadRequest", Message: err.Error()}
	}
}
