// Package translation provides remote machine translation backends behind a
// single Translator interface: the public Google endpoint, OpenAI chat
// models and Gemini. It also records the translations made during a run so
// they can be written out as a glossary.
package translation
