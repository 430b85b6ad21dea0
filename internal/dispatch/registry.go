package dispatch

import (
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// defaultQueueSize bounds each session's outbound queue. A session that
// cannot drain this many frames is considered slow and starts dropping.
const defaultQueueSize = 32

// Session is one live connection of one employee. Frames are queued
// non-blocking; the transport drains Frames() and writes them out.
type Session struct {
	ID         string
	EmployeeID uint

	mu     sync.Mutex
	queue  chan []byte
	closed bool
}

func NewSession(employeeID uint) *Session {
	return &Session{
		ID:         uuid.NewString(),
		EmployeeID: employeeID,
		queue:      make(chan []byte, defaultQueueSize),
	}
}

// Frames returns the outbound frame channel. It is closed when the session
// is unregistered.
func (s *Session) Frames() <-chan []byte {
	return s.queue
}

// enqueue queues a frame without blocking. Returns false when the frame was
// dropped (queue full or session closed).
func (s *Session) enqueue(frame []byte) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}
	select {
	case s.queue <- frame:
		return true
	default:
		return false
	}
}

func (s *Session) close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.queue)
	}
}

// Registry owns the room map: employee identity to live sessions. It is a
// constructed object with lifecycle tied to the server, not a package-level
// singleton, so tests can run isolated instances.
type Registry struct {
	mu     sync.Mutex
	rooms  map[uint]map[string]*Session
	logger *logrus.Logger
}

func NewRegistry() *Registry {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Registry{
		rooms:  make(map[uint]map[string]*Session),
		logger: logger,
	}
}

// Register adds a session to its employee's room. An employee may hold any
// number of concurrent sessions.
func (r *Registry) Register(session *Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	room, ok := r.rooms[session.EmployeeID]
	if !ok {
		room = make(map[string]*Session)
		r.rooms[session.EmployeeID] = room
	}
	room[session.ID] = session

	r.logger.WithFields(logrus.Fields{
		"employee_id": session.EmployeeID,
		"session_id":  session.ID,
		"connections": len(room),
	}).Info("Session registered")
}

// Unregister removes a session and closes its queue. Idempotent; the session
// is no longer a dispatch target once this returns.
func (r *Registry) Unregister(session *Session) {
	r.mu.Lock()
	room, ok := r.rooms[session.EmployeeID]
	if ok {
		delete(room, session.ID)
		if len(room) == 0 {
			delete(r.rooms, session.EmployeeID)
		}
	}
	r.mu.Unlock()

	session.close()

	if ok {
		r.logger.WithFields(logrus.Fields{
			"employee_id": session.EmployeeID,
			"session_id":  session.ID,
		}).Info("Session unregistered")
	}
}

// SessionsFor returns a snapshot of the employee's live sessions.
func (r *Registry) SessionsFor(employeeID uint) []*Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	room := r.rooms[employeeID]
	sessions := make([]*Session, 0, len(room))
	for _, s := range room {
		sessions = append(sessions, s)
	}
	return sessions
}

// ConnectionCount returns the number of live sessions across all rooms.
func (r *Registry) ConnectionCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, room := range r.rooms {
		count += len(room)
	}
	return count
}
