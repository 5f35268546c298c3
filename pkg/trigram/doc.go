/*
Package trigram implements a small statistical language model: it counts
trigrams over sentence-split text and generates new word sequences by
sampling with backoff (trigram -> bigram -> unigram).

A Model owns its frequency tables and a private, seedable random source,
so generation is reproducible for a fixed seed and training corpus. All
tables are rebuilt from scratch on every call to Fit.

For a complete usage example, see the README.md file.
*/
package trigram
