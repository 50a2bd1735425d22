package handlers

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its middleware.
// It encapsulates all information needed to register a command.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	Middleware  []tgbot.Middleware
	MatchType   tgbot.MatchType
}

// RegisterAllCommands initializes and returns a map of all available bot
// commands. Every command runs behind the recover boundary and the
// fire-and-forget activity logger.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	common := []tgbot.Middleware{Recover(deps), LogActivity(deps)}

	command := func(pattern string, handler tgbot.HandlerFunc) RegisteredHandler {
		return RegisteredHandler{
			HandlerType: tgbot.HandlerTypeMessageText,
			Pattern:     pattern,
			Handler:     handler,
			MatchType:   tgbot.MatchTypeCommandStartOnly,
			Middleware:  common,
		}
	}

	return map[string]RegisteredHandler{
		"/start":    command("start", NewStartHandler(deps)),
		"/play":     command("play", NewPlayHandler(deps)),
		"/album":    command("album", NewAlbumHandler(deps)),
		"/category": command("category", NewCategoryHandler(deps)),
		"/search":   command("search", NewSearchHandler(deps)),
		"/help":     command("help", NewHelpHandler(deps)),
	}
}
