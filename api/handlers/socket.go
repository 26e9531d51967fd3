package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// refreshEvent tells an open grid to re-fetch its person's measures
type refreshEvent struct {
	Event    string `json:"event"`
	PersonID int    `json:"personId"`
}

// subscriber wraps one console connection with its write lock. gorilla
// connections support at most one concurrent writer, so every outbound frame
// goes through send.
type subscriber struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (s *subscriber) send(event refreshEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn.WriteJSON(event)
}

// Hub fans measure-write notifications out to the consoles watching a person,
// so an open grid refreshes without a page reload
type Hub struct {
	mu   sync.Mutex
	subs map[int]map[*subscriber]struct{}
}

// NewHub creates an empty hub
func NewHub() *Hub {
	return &Hub{subs: make(map[int]map[*subscriber]struct{})}
}

// ServeWS upgrades the connection and subscribes it to one person's events
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	personID, err := strconv.Atoi(mux.Vars(r)["person_id"])
	if err != nil {
		http.Error(w, "invalid person id", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zap.S().With(err).Warn("websocket upgrade failed")
		return
	}
	sub := &subscriber{conn: conn}

	h.mu.Lock()
	if h.subs[personID] == nil {
		h.subs[personID] = make(map[*subscriber]struct{})
	}
	h.subs[personID][sub] = struct{}{}
	h.mu.Unlock()

	zap.S().Debugw("console subscribed", "personId", personID)

	// read loop only detects the close; the console never sends payloads
	go func() {
		defer h.drop(personID, sub)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Hub) drop(personID int, sub *subscriber) {
	h.mu.Lock()
	if subs, ok := h.subs[personID]; ok {
		delete(subs, sub)
		if len(subs) == 0 {
			delete(h.subs, personID)
		}
	}
	h.mu.Unlock()
	sub.conn.Close()
}

// NotifyPerson broadcasts a measures_updated event to every console watching
// the person. Dead connections are dropped on write failure.
func (h *Hub) NotifyPerson(personID int) {
	event := refreshEvent{Event: "measures_updated", PersonID: personID}

	h.mu.Lock()
	subs := make([]*subscriber, 0, len(h.subs[personID]))
	for sub := range h.subs[personID] {
		subs = append(subs, sub)
	}
	h.mu.Unlock()

	for _, sub := range subs {
		if err := sub.send(event); err != nil {
			zap.S().Debugw("dropping dead console subscription", "personId", personID)
			h.drop(personID, sub)
		}
	}
}
