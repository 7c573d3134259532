package utils

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// AuthCache holds validated token claims keyed by token string so repeated
// requests skip signature verification for a short window.
var AuthCache = cache.New(time.Minute*5, time.Second*30)

// MembershipCache holds positive membership checks. Memberships are only ever
// removed together with their chat, and a deleted chat 404s before the check,
// so cached positives cannot go stale into a leak.
var MembershipCache = cache.New(time.Minute*5, time.Second*30)
