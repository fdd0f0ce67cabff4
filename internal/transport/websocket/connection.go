package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// ConnectionManager tracks the live socket for each session. A session
// has at most one connection; joining again from a new tab supersedes
// the old socket.
type ConnectionManager struct {
	mu          sync.RWMutex
	connections map[string]*websocket.Conn
	writeMu     map[string]*sync.Mutex
}

func NewConnectionManager() *ConnectionManager {
	return &ConnectionManager{
		connections: make(map[string]*websocket.Conn),
		writeMu:     make(map[string]*sync.Mutex),
	}
}

// Add registers conn as the session's connection, closing any previous
// one so stale tabs do not keep receiving updates.
func (cm *ConnectionManager) Add(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if oldConn, exists := cm.connections[sessionID]; exists && oldConn != conn {
		log.Printf("[WS] Session %s reconnected, closing previous connection", sessionID)
		oldConn.Close()
	}

	cm.connections[sessionID] = conn
	if _, exists := cm.writeMu[sessionID]; !exists {
		cm.writeMu[sessionID] = &sync.Mutex{}
	}
}

// RemoveIfMatching unregisters the session's connection only if it is
// still the given one. The read loop of a superseded connection calls
// this on exit without tearing down the replacement.
func (cm *ConnectionManager) RemoveIfMatching(sessionID string, conn *websocket.Conn) {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if current, exists := cm.connections[sessionID]; exists && current == conn {
		delete(cm.connections, sessionID)
		delete(cm.writeMu, sessionID)
	}
}

// Send writes msg to the session's connection. WriteJSON is not safe
// for concurrent use, so writes are serialized per session.
func (cm *ConnectionManager) Send(sessionID string, msg ServerMessage) error {
	cm.mu.RLock()
	conn, exists := cm.connections[sessionID]
	writeMu, muExists := cm.writeMu[sessionID]
	cm.mu.RUnlock()

	if !exists || !muExists {
		return nil
	}

	writeMu.Lock()
	defer writeMu.Unlock()

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[WS] Error sending message to session %s: %v", sessionID, err)
		return err
	}
	return nil
}

// Broadcast sends msg to every connected session. Used for server-wide
// notices such as shutdown.
func (cm *ConnectionManager) Broadcast(msg ServerMessage) {
	cm.mu.RLock()
	sessionIDs := make([]string, 0, len(cm.connections))
	for sessionID := range cm.connections {
		sessionIDs = append(sessionIDs, sessionID)
	}
	cm.mu.RUnlock()

	for _, sessionID := range sessionIDs {
		cm.Send(sessionID, msg)
	}
}

// Count returns the number of live connections.
func (cm *ConnectionManager) Count() int {
	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return len(cm.connections)
}
