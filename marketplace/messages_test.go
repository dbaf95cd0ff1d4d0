package marketplace

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
)

func TestMessagesConversations(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages/conversations" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, []Conversation{
			{ID: 1, ProductID: 42, LastMessagePreview: "Is it still available?"},
		})
	})

	convs, err := api.Messages.Conversations(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(convs) != 1 || convs[0].ProductID != 42 {
		t.Errorf("unexpected conversations: %+v", convs)
	}
}

func TestMessagesConversation(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages/conversations/5" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"id":         5,
			"product_id": 42,
			"messages": []map[string]any{
				{"id": 9, "conversation_id": 5, "sender_id": 1, "body": "Hello"},
			},
		})
	})

	conv, err := api.Messages.Conversation(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if conv.ID != 5 || len(conv.Messages) != 1 || conv.Messages[0].Body != "Hello" {
		t.Errorf("unexpected conversation: %+v", conv)
	}
}

func TestMessagesStart(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages/conversations" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req ConversationStart
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.ProductID != 42 || req.FirstMessage != "Is it still available?" {
			t.Errorf("unexpected payload: %+v", req)
		}
		writeJSON(t, w, http.StatusCreated, Message{ID: 9, ConversationID: 5, Body: req.FirstMessage})
	})

	m, err := api.Messages.Start(context.Background(), ConversationStart{
		ProductID:    42,
		FirstMessage: "Is it still available?",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ConversationID != 5 {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestMessagesStartInvalidPayload(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("expected no HTTP request for an invalid payload")
	})

	_, err := api.Messages.Start(context.Background(), ConversationStart{ProductID: 42})
	if err == nil {
		t.Fatal("expected a validation error for a missing first message")
	}
}

func TestMessagesSend(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages/conversations/5/messages" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusCreated, Message{ID: 10, ConversationID: 5, Body: "Yes, it is"})
	})

	m, err := api.Messages.Send(context.Background(), 5, MessageCreate{Body: "Yes, it is"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID != 10 {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestMessagesUpdate(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/messages/10" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, Message{ID: 10, Body: "Yes, still here"})
	})

	m, err := api.Messages.Update(context.Background(), 10, MessageCreate{Body: "Yes, still here"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Body != "Yes, still here" {
		t.Errorf("unexpected message: %+v", m)
	}
}

func TestMessagesDelete(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/messages/10" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := api.Messages.Delete(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMessagesMarkRead(t *testing.T) {
	api := newTestAPI(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/messages/conversations/5/mark-read" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := api.Messages.MarkRead(context.Background(), 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
