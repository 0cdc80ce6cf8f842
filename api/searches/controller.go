package searchapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/abenezer-t/gridseek-api/config"
	"github.com/abenezer-t/gridseek-api/service"
	"github.com/abenezer-t/gridseek-api/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SearchController manages search-session operations over HTTP.
type SearchController struct {
	sessionManager i.SessionManager
}

// NewSearchController initializes a SearchController.
func NewSearchController(sm i.SessionManager) (*SearchController, error) {
	return &SearchController{sessionManager: sm}, nil
}

// Register registers the search-session routes.
func (sc *SearchController) Register(route *gin.RouterGroup) {
	searches := route.Group("/searches")
	{
		searches.POST("/", sc.create)
		searches.GET("/:ID", sc.state)
		searches.GET("/:ID/board", sc.board)
		searches.GET("/:ID/path", sc.path)
		searches.POST("/:ID/step", sc.step)
		searches.POST("/:ID/move", sc.move)
		searches.POST("/:ID/restart", sc.restart)
	}
}

// create handles session creation requests.
func (sc *SearchController) create(ctx *gin.Context) {
	var request CreateSessionRequest
	if err := ctx.ShouldBind(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	applyDefaults(&request)

	id, err := sc.sessionManager.NewSession(i.SessionConfig{
		Columns:     request.Columns,
		Rows:        request.Rows,
		Seed:        request.Seed,
		WallMin:     request.WallMin,
		WallMax:     request.WallMax,
		StartColumn: request.StartColumn,
		StartRow:    request.StartRow,
		Variant:     request.Variant,
		Heuristic:   request.Heuristic,
		StepDelay:   time.Duration(request.StepDelayMS) * time.Millisecond,
	})
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, CreateSessionResponse{ID: id.String()})
}

// state returns a session's progress snapshot.
func (sc *SearchController) state(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	state, err := sc.sessionManager.State(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, stateResponse(state))
}

// board returns every cell of the session's board.
func (sc *SearchController) board(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	cells, err := sc.sessionManager.BoardCells(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	response := BoardResponse{Cells: make([]CellStateResponse, 0, len(cells))}
	for _, cell := range cells {
		response.Cells = append(response.Cells, CellStateResponse(cell))
	}
	ctx.JSON(http.StatusOK, response)
}

// step advances a session by one search step.
func (sc *SearchController) step(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	state, err := sc.sessionManager.Advance(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, stateResponse(state))
}

// path returns the materialized final path.
func (sc *SearchController) path(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	path, err := sc.sessionManager.Path(id)
	if err != nil {
		if errors.Is(err, service.ErrSearchNotFinished) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, PathResponse{Cells: marksResponse(path)})
}

// move pops one movement direction from the final path.
func (sc *SearchController) move(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	direction, err := sc.sessionManager.NextMove(id)
	if err != nil {
		if errors.Is(err, service.ErrSearchNotFinished) {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, MoveResponse{Direction: direction})
}

// restart clears a session's search state so it can re-plan.
func (sc *SearchController) restart(ctx *gin.Context) {
	id, ok := sessionID(ctx)
	if !ok {
		return
	}

	if err := sc.sessionManager.Restart(id); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Status(http.StatusNoContent)
}

// applyDefaults fills omitted board and pacing fields from the configured
// defaults.
func applyDefaults(request *CreateSessionRequest) {
	if request.Columns == 0 {
		request.Columns = config.Envs.BoardCols
	}
	if request.Rows == 0 {
		request.Rows = config.Envs.BoardRows
	}
	if request.WallMin == 0 && request.WallMax == 0 {
		request.WallMin = config.Envs.WallMin
		request.WallMax = config.Envs.WallMax
	}
	if request.Heuristic == "" {
		request.Heuristic = "manhattan"
	}
	if request.StepDelayMS == 0 {
		request.StepDelayMS = config.Envs.StepDelayMS
	}
}

// sessionID parses the ID path parameter, replying 400 on failure.
func sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "id not found"})
		return uuid.Nil, false
	}
	return id, true
}

func stateResponse(state i.SearchState) SearchStateResponse {
	return SearchStateResponse{
		Variant:   state.Variant,
		Finished:  state.Finished,
		Exhausted: state.Exhausted,
		Steps:     state.Steps,
		ElapsedMS: state.Elapsed.Milliseconds(),
		Frontier:  marksResponse(state.Frontier),
		Path:      marksResponse(state.Path),
	}
}

func marksResponse(marks []i.CellMark) []CellMarkResponse {
	response := make([]CellMarkResponse, 0, len(marks))
	for _, mark := range marks {
		response = append(response, CellMarkResponse(mark))
	}
	return response
}
