package platform

// Package platform contains OS/platform integration and external tooling glue:
// filesystem helpers, aria2c binary resolution, Hugging Face URL parsing, and
// OS open/reveal.
