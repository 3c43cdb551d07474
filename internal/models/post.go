package models

import "time"

// CandidatePost is a forum post identified as a possible engagement target.
// Candidates are ephemeral: discovery produces them, generation consumes them,
// and they are never persisted on their own. A comment keeps its own snapshot.
type CandidatePost struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	Subreddit    string    `json:"subreddit"`
	URL          string    `json:"url"`
	Score        int       `json:"score"`
	CommentCount int       `json:"comment_count"`
	DiscoveredAt time.Time `json:"discovered_at"`
}
