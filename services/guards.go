package services

import (
	"context"

	"drive-relay/chat"
	"drive-relay/domain"
)

// Guard is a composable precondition checked at the entry of a command
// handler. A rejected result carries the response the user should see.
// Guards replace implicit decorator-style interception with explicit
// pass/reject values.
type Guard func(ctx context.Context, msg domain.IncomingMessage) GuardResult

type GuardResult struct {
	Allowed  bool
	Response string
}

func pass() GuardResult {
	return GuardResult{Allowed: true}
}

func reject(response string) GuardResult {
	return GuardResult{Response: response}
}

// RequireGroup rejects messages sent from a direct conversation.
func RequireGroup() Guard {
	return func(ctx context.Context, msg domain.IncomingMessage) GuardResult {
		if msg.FromUser {
			return reject(checkInGroupRes)
		}
		return pass()
	}
}

// RequireLogin rejects messages when the chat session is not usable.
func RequireLogin(chatClient chat.IChatClient) Guard {
	return func(ctx context.Context, msg domain.IncomingMessage) GuardResult {
		if _, err := chatClient.Me(ctx); err != nil {
			return reject(notLoginRes)
		}
		return pass()
	}
}

// All runs guards in order and stops at the first rejection.
func All(guards ...Guard) Guard {
	return func(ctx context.Context, msg domain.IncomingMessage) GuardResult {
		for _, guard := range guards {
			if result := guard(ctx, msg); !result.Allowed {
				return result
			}
		}
		return pass()
	}
}
