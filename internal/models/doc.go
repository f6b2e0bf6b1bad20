// Package models lists the chat models available to the configured API keys,
// so users can pick a value for --openai-model or --gemini-model.
package models
