/*
Package service manages search sessions: it pairs a generated board with one
search strategy, drives the strategy step by step under a configurable
cooldown, and collects the cell-status notifications a renderer polls for.
*/
package service

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/abenezer-t/gridseek-api/board"
	"github.com/abenezer-t/gridseek-api/config"
	"github.com/abenezer-t/gridseek-api/search"
	"github.com/abenezer-t/gridseek-api/search/heuristic"
	"github.com/abenezer-t/gridseek-api/service/i"
	"github.com/google/uuid"
)

// Session-related errors.
var (
	ErrSessionNotFound   = errors.New("no session with the given id")
	ErrStartOutOfBounds  = errors.New("start position is outside the board")
	ErrSearchNotFinished = errors.New("search has not finished")
)

// session couples a board with the strategy searching it.
type session struct {
	board     *board.Board
	strategy  search.Strategy
	variant   search.Variant
	steps     int
	stepDelay time.Duration
	lastStep  time.Time

	frontier []i.CellMark
	path     []i.CellMark
}

// CellEnteredFrontier implements search.Observer.
func (s *session) CellEnteredFrontier(column, row int) {
	s.frontier = append(s.frontier, i.CellMark{Column: column, Row: row})
}

// CellJoinedPath implements search.Observer.
func (s *session) CellJoinedPath(column, row int) {
	s.path = append(s.path, i.CellMark{Column: column, Row: row})
}

// SessionManager owns every live search session, keyed by ID.
type SessionManager struct {
	sessions map[uuid.UUID]*session
	logger   *log.Logger
	sync.RWMutex
}

// NewSessionManager creates an empty session manager logging to logger.
func NewSessionManager(logger *log.Logger) (*SessionManager, error) {
	return &SessionManager{
		sessions: make(map[uuid.UUID]*session),
		logger:   logger,
	}, nil
}

// NewSession generates a board from the config, initializes the chosen
// strategy on it, and returns the new session's ID. Board generation is
// deterministic for a given seed, so whether the start position lands on a
// wall is seed-dependent; that case fails here with search.ErrStartOnWall.
func (m *SessionManager) NewSession(cfg i.SessionConfig) (uuid.UUID, error) {
	variant, err := search.ParseVariant(cfg.Variant)
	if err != nil {
		return uuid.Nil, err
	}
	kind, err := heuristic.Parse(cfg.Heuristic)
	if err != nil {
		return uuid.Nil, err
	}

	b, err := board.New(cfg.Columns, cfg.Rows)
	if err != nil {
		return uuid.Nil, err
	}
	if err := b.Setup(cfg.Seed, board.WallRange{Min: cfg.WallMin, Max: cfg.WallMax}); err != nil {
		return uuid.Nil, err
	}

	start := b.CellAt(cfg.StartColumn, cfg.StartRow)
	if start == nil {
		return uuid.Nil, fmt.Errorf("%w: (%d,%d)", ErrStartOutOfBounds, cfg.StartColumn, cfg.StartRow)
	}
	goal, err := b.Goal()
	if err != nil {
		return uuid.Nil, err
	}

	strategy, err := search.New(variant, kind)
	if err != nil {
		return uuid.Nil, err
	}

	sess := &session{
		board:     b,
		strategy:  strategy,
		variant:   variant,
		stepDelay: cfg.StepDelay,
	}
	strategy.SetObserver(sess)

	if err := strategy.Initialize(start, goal); err != nil {
		m.logger.Printf("%s[ERROR]%s initializing %s session: %s", config.LogErrorColor, config.LogColorReset, variant, err)
		return uuid.Nil, err
	}

	id := m.saveSession(sess)
	m.logger.Printf("%s[INFO]%s started %s session %s on a %dx%d board", config.LogInfoColor, config.LogColorReset, variant, id, cfg.Columns, cfg.Rows)
	return id, nil
}

// saveSession stores the session under a collision-checked fresh ID.
func (m *SessionManager) saveSession(sess *session) uuid.UUID {
	m.Lock()
	defer m.Unlock()

	id := uuid.New()
	for {
		if _, ok := m.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	m.sessions[id] = sess
	return id
}

// byID resolves a session or fails with ErrSessionNotFound.
func (m *SessionManager) byID(id uuid.UUID) (*session, error) {
	m.RLock()
	defer m.RUnlock()
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// BoardCells returns every cell of the session's board for rendering.
func (m *SessionManager) BoardCells(id uuid.UUID) ([]i.CellState, error) {
	sess, err := m.byID(id)
	if err != nil {
		return nil, err
	}

	cells := make([]i.CellState, 0, sess.board.NumColumns()*sess.board.NumRows())
	for column := 0; column < sess.board.NumColumns(); column++ {
		for row := 0; row < sess.board.NumRows(); row++ {
			cell := sess.board.CellAt(column, row)
			cells = append(cells, i.CellState{
				Column: column,
				Row:    row,
				Kind:   cell.Kind().String(),
			})
		}
	}
	return cells, nil
}

// Advance performs one search step unless the session's cooldown has not
// elapsed yet, and returns the resulting state. The cooldown is the external
// gate of the stepwise contract: the strategy itself never blocks.
func (m *SessionManager) Advance(id uuid.UUID) (i.SearchState, error) {
	sess, err := m.byID(id)
	if err != nil {
		return i.SearchState{}, err
	}

	m.Lock()
	defer m.Unlock()
	if sess.stepDelay == 0 || time.Since(sess.lastStep) >= sess.stepDelay {
		sess.strategy.Advance(sess.board)
		sess.steps++
		sess.lastStep = time.Now()
	}
	return m.snapshot(sess), nil
}

// State returns the session's current state without stepping.
func (m *SessionManager) State(id uuid.UUID) (i.SearchState, error) {
	sess, err := m.byID(id)
	if err != nil {
		return i.SearchState{}, err
	}

	m.Lock()
	defer m.Unlock()
	return m.snapshot(sess), nil
}

// snapshot captures the session state. Callers hold the write lock: once the
// search finishes the path is materialized here, which fires the path
// notifications the snapshot collects.
func (m *SessionManager) snapshot(sess *session) i.SearchState {
	if sess.strategy.IsFinished() {
		sess.strategy.ReconstructPath()
	}

	return i.SearchState{
		Variant:   sess.variant.String(),
		Finished:  sess.strategy.IsFinished(),
		Exhausted: sess.strategy.IsExhausted(),
		Steps:     sess.steps,
		Elapsed:   sess.strategy.Elapsed(),
		Frontier:  append([]i.CellMark(nil), sess.frontier...),
		Path:      append([]i.CellMark(nil), sess.path...),
	}
}

// Path returns the materialized final path.
func (m *SessionManager) Path(id uuid.UUID) ([]i.CellMark, error) {
	sess, err := m.byID(id)
	if err != nil {
		return nil, err
	}

	m.Lock()
	defer m.Unlock()
	if !sess.strategy.IsFinished() {
		return nil, ErrSearchNotFinished
	}

	cells := sess.strategy.ReconstructPath()
	if len(cells) == 0 {
		return nil, nil
	}
	marks := make([]i.CellMark, 0, len(cells))
	for _, cell := range cells {
		marks = append(marks, i.CellMark{Column: cell.Column(), Row: cell.Row()})
	}
	return marks, nil
}

// NextMove pops one step of the final path as a direction name.
func (m *SessionManager) NextMove(id uuid.UUID) (string, error) {
	sess, err := m.byID(id)
	if err != nil {
		return "", err
	}

	m.Lock()
	defer m.Unlock()
	if !sess.strategy.IsFinished() {
		return "", ErrSearchNotFinished
	}
	return sess.strategy.NextMove().String(), nil
}

// Restart clears the session's search state and collected markings so the
// search can re-plan over the same board.
func (m *SessionManager) Restart(id uuid.UUID) error {
	sess, err := m.byID(id)
	if err != nil {
		return err
	}

	m.Lock()
	defer m.Unlock()
	sess.strategy.Restart(sess.board)
	sess.steps = 0
	sess.frontier = nil
	sess.path = nil
	sess.lastStep = time.Time{}

	m.logger.Printf("%s[INFO]%s restarted session %s", config.LogInfoColor, config.LogColorReset, id)
	return nil
}
