// Package hint sits between the search engine and whatever presents a game:
// it turns search Results into next-move suggestions and player-facing
// messages, validates player moves, and runs several strategies side by side.
//
// The engine never formats text; everything a player reads is produced here.
package hint
