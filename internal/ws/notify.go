package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type SkillsExtractedEvent struct {
	Type       string   `json:"type"`
	UserID     string   `json:"user_id"`
	Skills     []string `json:"skills"`
	AddedCount int      `json:"added_count"`
	Timestamp  string   `json:"timestamp"`
}

type IndexRebuiltEvent struct {
	Type      string `json:"type"`
	RoleCount int    `json:"role_count"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifySkillsExtracted(userID string, skills []string, addedCount int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := SkillsExtractedEvent{
		Type:       "skills_extracted",
		UserID:     userID,
		Skills:     skills,
		AddedCount: addedCount,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}

func NotifyIndexRebuilt(roleCount int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := IndexRebuiltEvent{
		Type:      "index_rebuilt",
		RoleCount: roleCount,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	h.Broadcast(b)
}
