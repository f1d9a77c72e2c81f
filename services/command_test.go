package services

import (
	"testing"

	"github.com/stretchr/testify/require"

	"drive-relay/domain"
)

func TestParseCommand(t *testing.T) {
	req := require.New(t)
	ref := domain.MessageRef{Channel: 100, ID: 42}

	t.Run("Slash commands", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/start"})
		req.True(ok)
		req.IsType(domain.StartCommand{}, cmd)

		cmd, ok = parseCommand(domain.IncomingMessage{Ref: ref, Text: "/help"})
		req.True(ok)
		req.IsType(domain.HelpCommand{}, cmd)

		cmd, ok = parseCommand(domain.IncomingMessage{Ref: ref, Text: "/autoDelete"})
		req.True(ok)
		req.IsType(domain.ToggleAutoDeleteCommand{}, cmd)
	})

	t.Run("Bot mention suffix is stripped", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/help@relay_bot"})
		req.True(ok)
		req.IsType(domain.HelpCommand{}, cmd)
	})

	t.Run("Unknown command is ignored", func(t *testing.T) {
		_, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/frobnicate"})
		req.False(ok)
	})

	t.Run("Url command with argument", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/url https://example.com/a.zip"})
		req.True(ok)
		upload, isUpload := cmd.(domain.UploadURLCommand)
		req.True(isUpload)
		req.Equal("https://example.com/a.zip", upload.FileURL)
	})

	t.Run("Url command without argument shows usage", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/url"})
		req.True(ok)
		usage, isUsage := cmd.(domain.UsageCommand)
		req.True(isUsage)
		req.Equal(urlUsageRes, usage.Response)
	})

	t.Run("Links command with valid range", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/links https://t.me/c/200/10 3"})
		req.True(ok)
		links, isLinks := cmd.(domain.TransferLinksCommand)
		req.True(isLinks)
		req.Equal(domain.MessageRef{Channel: 200, ID: 10}, links.From)
		req.Equal(3, links.Count)
	})

	t.Run("Links command with out-of-range count shows usage", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/links https://t.me/c/200/10 500"})
		req.True(ok)
		req.IsType(domain.UsageCommand{}, cmd)

		cmd, ok = parseCommand(domain.IncomingMessage{Ref: ref, Text: "/links https://t.me/c/200/10 0"})
		req.True(ok)
		req.IsType(domain.UsageCommand{}, cmd)
	})

	t.Run("Links command with bad link shows usage", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "/links https://example.com/a.zip 3"})
		req.True(ok)
		req.IsType(domain.UsageCommand{}, cmd)
	})

	t.Run("Attached document", func(t *testing.T) {
		msg := domain.IncomingMessage{Ref: ref, Document: &domain.Document{FileID: "f1"}}
		cmd, ok := parseCommand(msg)
		req.True(ok)
		req.IsType(domain.TransferDocumentCommand{}, cmd)
	})

	t.Run("Plain url in message text", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "https://example.com/a.zip"})
		req.True(ok)
		upload, isUpload := cmd.(domain.UploadURLCommand)
		req.True(isUpload)
		req.Equal("https://example.com/a.zip", upload.FileURL)
	})

	t.Run("Message permalink transfers one restricted message", func(t *testing.T) {
		cmd, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "https://t.me/c/200/10"})
		req.True(ok)
		links, isLinks := cmd.(domain.TransferLinksCommand)
		req.True(isLinks)
		req.Equal(domain.MessageRef{Channel: 200, ID: 10}, links.From)
		req.Equal(1, links.Count)
	})

	t.Run("Plain text is ignored", func(t *testing.T) {
		_, ok := parseCommand(domain.IncomingMessage{Ref: ref, Text: "hello there"})
		req.False(ok)
	})
}
