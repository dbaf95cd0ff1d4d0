package marketplace

import (
	"context"
	"strconv"

	"github.com/loppen/marketplace-go/httpclient"
)

// ConversationStart opens a thread about a product.
type ConversationStart struct {
	ProductID int `json:"product_id" validate:"required,gt=0"`
	// ParticipantIDs may be omitted; the server infers creator + seller.
	ParticipantIDs []int  `json:"participant_ids,omitempty"`
	FirstMessage   string `json:"first_message" validate:"required,min=1"`
}

// MessageCreate sends a message into an existing conversation.
type MessageCreate struct {
	Body string `json:"body" validate:"required,min=1"`
}

// MessagesService handles conversations and chat messages.
type MessagesService struct {
	client *httpclient.Client
}

// Conversations returns the user's conversation threads.
func (s *MessagesService) Conversations(ctx context.Context) ([]Conversation, error) {
	return httpclient.Get[[]Conversation](ctx, s.client, "/messages/conversations")
}

// Conversation returns one thread together with its messages.
func (s *MessagesService) Conversation(ctx context.Context, id int) (*ConversationWithMessages, error) {
	c, err := httpclient.Get[ConversationWithMessages](ctx, s.client, "/messages/conversations/"+strconv.Itoa(id))
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Start opens a new conversation and returns its first message.
func (s *MessagesService) Start(ctx context.Context, req ConversationStart) (*Message, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	m, err := httpclient.Post[Message](ctx, s.client, "/messages/conversations", req)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Send posts a message into an existing conversation.
func (s *MessagesService) Send(ctx context.Context, conversationID int, req MessageCreate) (*Message, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	path := "/messages/conversations/" + strconv.Itoa(conversationID) + "/messages"
	m, err := httpclient.Post[Message](ctx, s.client, path, req)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Update edits a message's body.
func (s *MessagesService) Update(ctx context.Context, messageID int, req MessageCreate) (*Message, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	m, err := httpclient.Patch[Message](ctx, s.client, "/messages/"+strconv.Itoa(messageID), req)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Delete removes a message. The server answers 204 on success.
func (s *MessagesService) Delete(ctx context.Context, messageID int) error {
	_, err := httpclient.Delete[struct{}](ctx, s.client, "/messages/"+strconv.Itoa(messageID))
	return err
}

// MarkRead marks all messages of a conversation as read. The server
// answers 204 on success.
func (s *MessagesService) MarkRead(ctx context.Context, conversationID int) error {
	path := "/messages/conversations/" + strconv.Itoa(conversationID) + "/mark-read"
	_, err := httpclient.Post[struct{}](ctx, s.client, path, nil)
	return err
}
