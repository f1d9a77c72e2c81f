package services

import (
	"regexp"
	"strconv"
	"strings"

	"drive-relay/domain"
	"drive-relay/resolve"
)

// messageLinkPattern matches a t.me permalink to a channel message.
var messageLinkPattern = regexp.MustCompile(`^https://t\.me/c/(\d+)/(\d+)$`)

// maxLinksRange bounds how many sequential messages one /links command may
// fan out into.
const maxLinksRange = 100

// parseCommand turns an incoming message into a command. The second
// return value is false for messages the relay should ignore.
func parseCommand(msg domain.IncomingMessage) (domain.Command, bool) {
	fields := strings.Fields(msg.Text)

	if len(fields) > 0 && strings.HasPrefix(fields[0], "/") {
		switch command(fields[0]) {
		case "/start":
			return domain.StartCommand{Message: msg}, true
		case "/help":
			return domain.HelpCommand{Message: msg}, true
		case "/autoDelete":
			return domain.ToggleAutoDeleteCommand{Message: msg}, true
		case "/url":
			return parseURLCommand(msg, fields)
		case "/links":
			return parseLinksCommand(msg, fields)
		default:
			return nil, false
		}
	}

	if msg.Document != nil {
		return domain.TransferDocumentCommand{Message: msg}, true
	}
	if link, ok := resolve.ExtractLink(msg.Text); ok {
		if from, count, ok := parseMessageLink(link, 1); ok {
			return domain.TransferLinksCommand{Message: msg, From: from, Count: count}, true
		}
		return domain.UploadURLCommand{Message: msg, FileURL: link}, true
	}
	return nil, false
}

// command strips the @botname suffix used when addressing a bot in a group.
func command(field string) string {
	if idx := strings.IndexByte(field, '@'); idx != -1 {
		return field[:idx]
	}
	return field
}

func parseURLCommand(msg domain.IncomingMessage, fields []string) (domain.Command, bool) {
	if len(fields) != 2 {
		return domain.UsageCommand{Message: msg, Response: urlUsageRes}, true
	}
	link, ok := resolve.ExtractLink(fields[1])
	if !ok {
		return domain.UsageCommand{Message: msg, Response: urlUsageRes}, true
	}
	return domain.UploadURLCommand{Message: msg, FileURL: link}, true
}

func parseLinksCommand(msg domain.IncomingMessage, fields []string) (domain.Command, bool) {
	if len(fields) != 3 {
		return domain.UsageCommand{Message: msg, Response: linksUsageRes}, true
	}
	count, err := strconv.Atoi(fields[2])
	if err != nil {
		return domain.UsageCommand{Message: msg, Response: linksUsageRes}, true
	}
	from, count, ok := parseMessageLink(fields[1], count)
	if !ok {
		return domain.UsageCommand{Message: msg, Response: linksUsageRes}, true
	}
	return domain.TransferLinksCommand{Message: msg, From: from, Count: count}, true
}

func parseMessageLink(link string, count int) (domain.MessageRef, int, bool) {
	match := messageLinkPattern.FindStringSubmatch(link)
	if match == nil || count < 1 || count > maxLinksRange {
		return domain.MessageRef{}, 0, false
	}
	channel, err := strconv.ParseInt(match[1], 10, 64)
	if err != nil {
		return domain.MessageRef{}, 0, false
	}
	id, err := strconv.ParseInt(match[2], 10, 64)
	if err != nil {
		return domain.MessageRef{}, 0, false
	}
	ref := domain.MessageRef{Channel: domain.ChannelID(channel), ID: domain.MessageID(id)}
	return ref, count, true
}
