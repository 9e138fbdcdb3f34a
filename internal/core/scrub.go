package core

// scrub deletes every entry in the host's resolved-module cache whose
// normalized key matches m, making previously loaded modules appear
// never-loaded. Already-clean caches come out unchanged, so re-scrubbing is
// a no-op. Cost is proportional to the current cache size; callers invoke it
// once per enable/disable entry, never per resolution attempt.
func scrub(cache Cache, m Matcher) {
	for _, key := range cache.Keys() {
		if m.Matches(Normalize(key)) {
			cache.Delete(key)
		}
	}
}
