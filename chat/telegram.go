package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"drive-relay/domain"
	errs "drive-relay/errors"
)

const DefaultAPIBase = "https://api.telegram.org"

// supergroupOffset is the Bot API encoding prefix for supergroup and
// channel chat ids.
const supergroupOffset = 1_000_000_000_000

// APIError is a non-ok response from the Bot API.
type APIError struct {
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat api error %d: %s", e.Code, e.Description)
}

// BotClient talks to the Telegram Bot API over HTTPS JSON.
type BotClient struct {
	httpClient *http.Client
	base       string // <apiBase>/bot<token>
	fileBase   string // <apiBase>/file/bot<token>
	poll       time.Duration
	validate   *validator.Validate
	log        *slog.Logger

	mu     sync.Mutex
	offset int64 // next update id for long polling
}

func NewBotClient(httpClient *http.Client, apiBase, token string, poll time.Duration, log *slog.Logger) *BotClient {
	return &BotClient{
		httpClient: httpClient,
		base:       apiBase + "/bot" + token,
		fileBase:   apiBase + "/file/bot" + token,
		poll:       poll,
		validate:   validator.New(),
		log:        log,
	}
}

var _ IChatClient = (*BotClient)(nil)

type apiEnvelope struct {
	OK          bool            `json:"ok"`
	ErrorCode   int             `json:"error_code"`
	Description string          `json:"description"`
	Result      json.RawMessage `json:"result"`
}

type sendMessageRequest struct {
	ChatID    int64  `json:"chat_id" validate:"required"`
	Text      string `json:"text" validate:"required,max=4096"`
	ParseMode string `json:"parse_mode,omitempty"`
	ReplyTo   int64  `json:"reply_to_message_id,omitempty"`
}

type editMessageRequest struct {
	ChatID    int64  `json:"chat_id" validate:"required"`
	MessageID int64  `json:"message_id" validate:"required"`
	Text      string `json:"text" validate:"required,max=4096"`
	ParseMode string `json:"parse_mode,omitempty"`
}

type deleteMessageRequest struct {
	ChatID    int64 `json:"chat_id" validate:"required"`
	MessageID int64 `json:"message_id" validate:"required"`
}

type apiChat struct {
	ID   int64  `json:"id"`
	Type string `json:"type"`
}

type apiDocument struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
	MimeType string `json:"mime_type"`
	FileSize int64  `json:"file_size"`
}

type apiMessage struct {
	MessageID int64        `json:"message_id"`
	Chat      apiChat      `json:"chat"`
	Text      string       `json:"text"`
	Caption   string       `json:"caption"`
	Document  *apiDocument `json:"document"`
	Video     *apiDocument `json:"video"`
	Audio     *apiDocument `json:"audio"`
}

type apiUpdate struct {
	UpdateID int64       `json:"update_id"`
	Message  *apiMessage `json:"message"`
}

func (c *BotClient) Send(ctx context.Context, to domain.MessageRef, text string) (domain.MessageRef, error) {
	return c.sendMessage(ctx, sendMessageRequest{
		ChatID:    to.APIChatID(),
		Text:      text,
		ParseMode: "Markdown",
	})
}

func (c *BotClient) Reply(ctx context.Context, to domain.MessageRef, text string) (domain.MessageRef, error) {
	return c.sendMessage(ctx, sendMessageRequest{
		ChatID:    to.APIChatID(),
		Text:      text,
		ParseMode: "Markdown",
		ReplyTo:   int64(to.ID),
	})
}

func (c *BotClient) sendMessage(ctx context.Context, req sendMessageRequest) (domain.MessageRef, error) {
	var sent apiMessage
	if err := c.call(ctx, "sendMessage", req, &sent); err != nil {
		return domain.MessageRef{}, err
	}
	return refOf(sent), nil
}

// Edit rewrites a message in place. An edit that would not change the
// message is a no-op success, never an error.
func (c *BotClient) Edit(ctx context.Context, msg domain.MessageRef, text string) error {
	err := c.call(ctx, "editMessageText", editMessageRequest{
		ChatID:    msg.APIChatID(),
		MessageID: int64(msg.ID),
		Text:      text,
		ParseMode: "Markdown",
	}, nil)
	if isNotModified(err) {
		c.log.Debug("edit produced identical content, swallowed", "channel", msg.Channel, "id", msg.ID)
		return nil
	}
	return err
}

func (c *BotClient) Delete(ctx context.Context, msg domain.MessageRef) error {
	err := c.call(ctx, "deleteMessage", deleteMessageRequest{
		ChatID:    msg.APIChatID(),
		MessageID: int64(msg.ID),
	}, nil)
	if isDeleteForbidden(err) {
		return fmt.Errorf("%w: %v", errs.ErrDeleteForbidden, err)
	}
	return err
}

// Me returns the bot's username and doubles as a login probe.
func (c *BotClient) Me(ctx context.Context) (string, error) {
	var me struct {
		Username string `json:"username"`
	}
	if err := c.call(ctx, "getMe", struct{}{}, &me); err != nil {
		return "", err
	}
	return me.Username, nil
}

// Message fetches a message by reference. The Bot API cannot read channel
// history directly, so the message is forwarded into the via channel, its
// payload captured, and the forwarded copy removed again.
func (c *BotClient) Message(ctx context.Context, ref domain.MessageRef, via domain.ChannelID) (domain.IncomingMessage, error) {
	req := struct {
		ChatID     int64 `json:"chat_id" validate:"required"`
		FromChatID int64 `json:"from_chat_id" validate:"required"`
		MessageID  int64 `json:"message_id" validate:"required"`
	}{
		ChatID:     domain.MessageRef{Channel: via}.APIChatID(),
		FromChatID: ref.APIChatID(),
		MessageID:  int64(ref.ID),
	}
	var forwarded apiMessage
	if err := c.call(ctx, "forwardMessage", req, &forwarded); err != nil {
		return domain.IncomingMessage{}, err
	}
	msg := toIncoming(forwarded)
	if err := c.Delete(ctx, msg.Ref); err != nil {
		c.log.Debug("could not remove forwarded scratch copy", "error", err)
	}
	// The payload came from ref; keep the original identity for anchors.
	msg.Ref = ref
	return msg, nil
}

// OpenDocument resolves the file behind an attachment and opens a byte
// stream for it.
func (c *BotClient) OpenDocument(ctx context.Context, doc domain.Document) (io.ReadCloser, error) {
	var file struct {
		FilePath string `json:"file_path"`
	}
	req := struct {
		FileID string `json:"file_id" validate:"required"`
	}{FileID: doc.FileID}
	if err := c.call(ctx, "getFile", req, &file); err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.fileBase+"/"+file.FilePath, nil)
	if err != nil {
		return nil, fmt.Errorf("create request failed: %w", err)
	}
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("open document failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("open document failed: status %d", resp.StatusCode)
	}
	return resp.Body, nil
}

// NextUpdates performs one long-poll round and returns the messages it
// carried, advancing the update offset.
func (c *BotClient) NextUpdates(ctx context.Context) ([]domain.IncomingMessage, error) {
	c.mu.Lock()
	offset := c.offset
	c.mu.Unlock()

	req := struct {
		Offset  int64    `json:"offset,omitempty"`
		Timeout int64    `json:"timeout"`
		Allowed []string `json:"allowed_updates"`
	}{
		Offset:  offset,
		Timeout: int64(c.poll.Seconds()),
		Allowed: []string{"message"},
	}
	var updates []apiUpdate
	if err := c.call(ctx, "getUpdates", req, &updates); err != nil {
		return nil, err
	}

	messages := make([]domain.IncomingMessage, 0, len(updates))
	for _, update := range updates {
		if update.UpdateID >= offset {
			offset = update.UpdateID + 1
		}
		if update.Message == nil {
			continue
		}
		messages = append(messages, toIncoming(*update.Message))
	}

	c.mu.Lock()
	c.offset = offset
	c.mu.Unlock()
	return messages, nil
}

func (c *BotClient) call(ctx context.Context, method string, payload any, result any) error {
	if err := c.validate.Struct(payload); err != nil {
		// validator rejects non-struct payloads; empty probes pass through
		if _, ok := err.(*validator.InvalidValidationError); !ok {
			return fmt.Errorf("invalid %s payload: %w", method, err)
		}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload failed: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/"+method, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	defer resp.Body.Close()

	var envelope apiEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode %s response failed: %w", method, err)
	}
	if !envelope.OK {
		return &APIError{Code: envelope.ErrorCode, Description: envelope.Description}
	}
	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("decode %s result failed: %w", method, err)
		}
	}
	return nil
}

func isNotModified(err error) bool {
	apiErr, ok := asAPIError(err)
	return ok && strings.Contains(apiErr.Description, "message is not modified")
}

func isDeleteForbidden(err error) bool {
	apiErr, ok := asAPIError(err)
	if !ok {
		return false
	}
	return strings.Contains(apiErr.Description, "message can't be deleted") ||
		strings.Contains(apiErr.Description, "not enough rights")
}

func asAPIError(err error) (*APIError, bool) {
	if err == nil {
		return nil, false
	}
	apiErr, ok := err.(*APIError)
	return apiErr, ok
}

func refOf(msg apiMessage) domain.MessageRef {
	channel, _ := fromAPIChatID(msg.Chat.ID)
	return domain.MessageRef{
		Channel: channel,
		ID:      domain.MessageID(msg.MessageID),
		Peer:    msg.Chat.ID,
	}
}

func toIncoming(msg apiMessage) domain.IncomingMessage {
	channel, fromUser := fromAPIChatID(msg.Chat.ID)
	text := msg.Text
	if text == "" {
		text = msg.Caption
	}
	return domain.IncomingMessage{
		Ref: domain.MessageRef{
			Channel: channel,
			ID:      domain.MessageID(msg.MessageID),
			Peer:    msg.Chat.ID,
		},
		Text:     text,
		FromUser: fromUser || msg.Chat.Type == "private",
		Document: toDocument(msg),
	}
}

func toDocument(msg apiMessage) *domain.Document {
	attached := msg.Document
	if attached == nil {
		attached = msg.Video
	}
	if attached == nil {
		attached = msg.Audio
	}
	if attached == nil {
		return nil
	}
	return &domain.Document{
		FileID:   attached.FileID,
		Name:     attached.FileName,
		MimeType: attached.MimeType,
		Size:     attached.FileSize,
	}
}

func fromAPIChatID(id int64) (domain.ChannelID, bool) {
	if id < -supergroupOffset {
		return domain.ChannelID(-id - supergroupOffset), false
	}
	return domain.ChannelID(id), id > 0
}
