//go:build !wasm

package live

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/korden-tech/korden/pkg/reactive"
	"github.com/korden-tech/korden/pkg/renderer/html"
	"github.com/korden-tech/korden/pkg/scheduler"
	"github.com/korden-tech/korden/pkg/ui/vdom"
)

// View is a server-rendered region of a page that re-renders when its
// sources change. Render runs on the session's scheduler goroutine; Handle
// runs on the connection's read goroutine and must not block.
type View interface {
	Render() *vdom.VNode
	Sources() []reactive.Source
	Handle(ctx context.Context, evt Event) error
}

// ViewFactory builds a fresh view for a session. params are the query
// parameters of the page that opened the connection.
type ViewFactory func(sched reactive.Scheduler, params url.Values) View

// Config tunes the live server
type Config struct {
	// AllowedOrigins lists accepted Origin headers. Empty means same host only.
	AllowedOrigins []string
	SendBuffer     int
	PingInterval   time.Duration
	PongWait       time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// DefaultConfig returns the settings used when a field is left zero
func DefaultConfig() Config {
	return Config{
		SendBuffer:     64,
		PingInterval:   54 * time.Second,
		PongWait:       60 * time.Second,
		WriteWait:      10 * time.Second,
		MaxMessageSize: 64 << 10,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.SendBuffer <= 0 {
		c.SendBuffer = d.SendBuffer
	}
	if c.PingInterval <= 0 {
		c.PingInterval = d.PingInterval
	}
	if c.PongWait <= c.PingInterval {
		c.PongWait = c.PingInterval + 6*time.Second
	}
	if c.WriteWait <= 0 {
		c.WriteWait = d.WriteWait
	}
	if c.MaxMessageSize <= 0 {
		c.MaxMessageSize = d.MaxMessageSize
	}
	return c
}

// Server handles WebSocket connections for live views
type Server struct {
	cfg      Config
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	views    map[string]ViewFactory
	sessions map[string]*Session
	closed   bool
}

// NewServer creates a new live protocol server
func NewServer(cfg Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		cfg:      cfg.withDefaults(),
		logger:   logger.With("component", "live"),
		views:    make(map[string]ViewFactory),
		sessions: make(map[string]*Session),
	}
	s.upgrader = websocket.Upgrader{
		CheckOrigin:     s.checkOrigin,
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
	}
	return s
}

// Register makes a view available to sessions under name
func (s *Server) Register(name string, factory ViewFactory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[name] = factory
}

// Views returns the registered view names in sorted order
func (s *Server) Views() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.views))
	for name := range s.views {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	if len(s.cfg.AllowedOrigins) > 0 {
		return slices.Contains(s.cfg.AllowedOrigins, origin) || slices.Contains(s.cfg.AllowedOrigins, "*")
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, r.Host)
}

// ServeHTTP upgrades /live/{id}?view=name&view=... to a session. The id must
// be a UUID; the remaining query parameters are passed to the view factories.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := path.Base(r.URL.Path)
	if _, err := uuid.Parse(id); err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return
	}

	params := r.URL.Query()
	names := params["view"]
	params.Del("view")
	if len(names) == 0 {
		http.Error(w, "no views requested", http.StatusBadRequest)
		return
	}

	s.mu.RLock()
	closed := s.closed
	factories := make(map[string]ViewFactory, len(names))
	for _, name := range names {
		if f, ok := s.views[name]; ok {
			factories[name] = f
		}
	}
	s.mu.RUnlock()

	if closed {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	if len(factories) != len(names) {
		http.Error(w, "unknown view", http.StatusNotFound)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "err", err)
		return
	}

	session := s.newSession(id, conn, factories, params)
	if !s.addSession(session) {
		session.Close()
		return
	}
	go session.run()
}

func (s *Server) addSession(session *Session) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}
	// A reconnect with the same id replaces the old connection
	if old, ok := s.sessions[session.ID]; ok {
		go old.Close()
	}
	s.sessions[session.ID] = session
	return true
}

func (s *Server) removeSession(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur, ok := s.sessions[session.ID]; ok && cur == session {
		delete(s.sessions, session.ID)
	}
}

// GetSession retrieves a session by ID
func (s *Server) GetSession(id string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	return session, ok
}

// SessionCount returns the number of open sessions
func (s *Server) SessionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown refuses new sessions and closes the open ones, waiting until
// they have stopped or ctx ends.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closed = true
	open := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		open = append(open, session)
	}
	s.mu.Unlock()

	for _, session := range open {
		session.Close()
	}
	for _, session := range open {
		select {
		case <-session.Done():
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// Session is one browser connection with its own scheduler and views
type Session struct {
	ID string

	server *Server
	conn   *websocket.Conn
	logger *slog.Logger
	sched  *scheduler.Scheduler
	views  map[string]View
	fibers map[string]*scheduler.Fiber

	ctx    context.Context
	cancel context.CancelFunc

	seq       atomic.Uint64
	sendChan  chan []byte
	closeChan chan struct{}
	closeOnce sync.Once
	done      chan struct{}
	dropped   atomic.Uint64
}

func (s *Server) newSession(id string, conn *websocket.Conn, factories map[string]ViewFactory, params url.Values) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	session := &Session{
		ID:        id,
		server:    s,
		conn:      conn,
		logger:    s.logger.With("session", id),
		sched:     scheduler.NewScheduler(),
		views:     make(map[string]View, len(factories)),
		fibers:    make(map[string]*scheduler.Fiber, len(factories)),
		ctx:       ctx,
		cancel:    cancel,
		sendChan:  make(chan []byte, s.cfg.SendBuffer),
		closeChan: make(chan struct{}),
		done:      make(chan struct{}),
	}

	session.sched.SetRenderApplier(session.applyRender)
	session.sched.SetDefaultErrorHandler(func(f *scheduler.Fiber, err any) bool {
		session.logger.Error("view panicked", "view", f.Name(), "err", err)
		return true
	})

	for name, factory := range factories {
		view := factory(session.sched, params)
		fiber := session.sched.CreateFiber(name, view.Render)
		reactive.Watch(fiber, view.Sources()...)
		session.views[name] = view
		session.fibers[name] = fiber
	}
	return session
}

// Context is cancelled when the session closes
func (s *Session) Context() context.Context {
	return s.ctx
}

// Done is closed once the session has fully stopped
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Seq returns the sequence number of the last update sent
func (s *Session) Seq() uint64 {
	return s.seq.Load()
}

// Close ends the session. Safe to call more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.cancel()
		close(s.closeChan)
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		s.conn.Close()
	})
}

func (s *Session) run() {
	defer close(s.done)
	defer s.server.removeSession(s)
	defer s.sched.Stop()
	defer s.Close()

	s.sched.Start(nil)

	go s.writer()

	s.send(EncodeControl(Control{Name: ControlHello, Text: s.ID, Seq: s.seq.Load()}))
	s.logger.Debug("session opened", "views", len(s.views))

	// Bring every view in line with the state its factory derived from params
	for _, f := range s.fibers {
		s.sched.MarkDirty(f)
	}

	s.reader()
	s.logger.Debug("session closed", "updates", s.seq.Load(), "dropped", s.dropped.Load())
}

func (s *Session) reader() {
	cfg := s.server.cfg
	s.conn.SetReadLimit(cfg.MaxMessageSize)
	s.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(cfg.PongWait))
	})

	for {
		messageType, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Warn("unexpected close", "err", err)
			}
			return
		}
		if messageType != websocket.BinaryMessage {
			s.logger.Debug("ignoring text message", "size", len(data))
			continue
		}
		if err := s.handleMessage(data); err != nil {
			s.logger.Warn("bad message", "err", err)
			s.send(EncodeControl(Control{Name: ControlError, Text: err.Error()}))
		}
	}
}

func (s *Session) handleMessage(data []byte) error {
	frameType, err := FrameType(data)
	if err != nil {
		return err
	}

	switch frameType {
	case FrameEvent:
		evt, err := DecodeEvent(data)
		if err != nil {
			return err
		}
		return s.dispatch(evt)

	case FrameControl:
		c, err := DecodeControl(data)
		if err != nil {
			return err
		}
		switch c.Name {
		case ControlPing:
			s.send(EncodeControl(Control{Name: ControlPong, Seq: s.seq.Load()}))
		case ControlHello:
			s.logger.Debug("client hello", "lastSeq", c.Seq)
		}
		return nil

	default:
		return fmt.Errorf("unexpected frame type 0x%02x", byte(frameType))
	}
}

var errUnknownView = errors.New("unknown view")

func (s *Session) dispatch(evt Event) error {
	view, ok := s.views[evt.View]
	if !ok {
		return fmt.Errorf("%w %q", errUnknownView, evt.View)
	}
	if err := view.Handle(s.ctx, evt); err != nil {
		return fmt.Errorf("%s %s: %w", evt.View, evt.Type, err)
	}
	return nil
}

func (s *Session) applyRender(fiber *scheduler.Fiber, node *vdom.VNode) {
	markup, err := html.RenderToString(node)
	if err != nil {
		s.logger.Error("render failed", "view", fiber.Name(), "err", err)
		return
	}
	s.send(EncodeUpdate(Update{Seq: s.seq.Add(1), View: fiber.Name(), HTML: markup}))
}

// send queues a frame without blocking. A full buffer means the client is
// not keeping up; the frame is dropped.
func (s *Session) send(frame []byte) {
	select {
	case <-s.closeChan:
		return
	default:
	}
	select {
	case s.sendChan <- frame:
	default:
		s.dropped.Add(1)
		s.logger.Warn("send buffer full, dropping frame", "size", len(frame))
	}
}

// writer handles writing messages to the WebSocket
func (s *Session) writer() {
	cfg := s.server.cfg
	ticker := time.NewTicker(cfg.PingInterval)
	defer ticker.Stop()

	for {
		select {
		case message := <-s.sendChan:
			s.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := s.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
				s.logger.Debug("write failed", "err", err)
				s.Close()
				return
			}

		case <-ticker.C:
			s.conn.SetWriteDeadline(time.Now().Add(cfg.WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.Close()
				return
			}

		case <-s.closeChan:
			return
		}
	}
}
