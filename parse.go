package odz

// parseMode selects which parse policy lz77Parse uses to turn a hash
// chain's candidate matches into a token stream.
type parseMode int

const (
	greedyParse parseMode = iota
	lazyParse
)

// lz77Parse tokenizes raw into a Match stream using the given parse
// policy and per-position chain-search depth.
func lz77Parse(raw []byte, mode parseMode, maxChainSteps int) []Match {
	switch mode {
	case lazyParse:
		return lazyParseTokens(raw, maxChainSteps)
	default:
		return greedyParseTokens(raw, maxChainSteps)
	}
}

// greedyParseTokens takes the longest match at every position, the
// mandatory baseline parse policy.
func greedyParseTokens(raw []byte, maxChainSteps int) []Match {
	var chain hashChain
	chain.reset(raw)

	var tokens []Match
	unmatched := 0
	n := len(raw)

	for pos := 0; pos < n; {
		length, dist := chain.bestMatch(pos, maxChainSteps)
		chain.insert(pos)

		if length < minMatchLength {
			unmatched++
			pos++
			continue
		}

		tokens = append(tokens, Match{Unmatched: unmatched, Length: length, Distance: dist})
		unmatched = 0
		for p := pos + 1; p < pos+length && p < n; p++ {
			chain.insert(p)
		}
		pos += length
	}

	tokens = append(tokens, Match{Unmatched: unmatched})
	return tokens
}

// lazyParseTokens defers a candidate match by one position to see whether
// the next position yields a strictly longer one, the classic zlib
// deflate_slow strategy: a one-step-lookahead deferred commit.
func lazyParseTokens(raw []byte, maxChainSteps int) []Match {
	var chain hashChain
	chain.reset(raw)

	var tokens []Match
	unmatched := 0
	n := len(raw)

	havePending := false
	var pendingPos, pendingLen, pendingDist int

	emit := func(length, dist int) {
		tokens = append(tokens, Match{Unmatched: unmatched, Length: length, Distance: dist})
		unmatched = 0
	}

	pos := 0
	for pos < n {
		length, dist := chain.bestMatch(pos, maxChainSteps)
		chain.insert(pos)

		if havePending {
			if length > pendingLen {
				// A strictly longer match starts one byte later: emit the
				// deferred position as a literal and make the current
				// position the new pending candidate.
				unmatched++
				if length >= minMatchLength {
					pendingPos, pendingLen, pendingDist = pos, length, dist
				} else {
					havePending = false
				}
				pos++
				continue
			}

			// Commit the deferred match; pendingPos+1 (today's pos) was
			// already inserted above, so interior insertion resumes at
			// pendingPos+2.
			emit(pendingLen, pendingDist)
			for p := pendingPos + 2; p < pendingPos+pendingLen && p < n; p++ {
				chain.insert(p)
			}
			pos = pendingPos + pendingLen
			havePending = false
			continue
		}

		if length < minMatchLength {
			unmatched++
			pos++
			continue
		}

		havePending = true
		pendingPos, pendingLen, pendingDist = pos, length, dist
		pos++
	}

	if havePending {
		emit(pendingLen, pendingDist)
	}

	tokens = append(tokens, Match{Unmatched: unmatched})
	return tokens
}
