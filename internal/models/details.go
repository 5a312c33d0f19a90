package models

// Read models returned by the aggregation layer. These are never stored;
// every derived field on them is recomputed from live rows on each read.

// AnimePostWithDetails is an anime post folded together with its author,
// deduplicated tags and derived review statistics.
type AnimePostWithDetails struct {
	AnimePost
	Author        User    `json:"author"`
	Tags          []Tag   `json:"tags"`
	AverageRating float64 `json:"average_rating"` // 0 when the post has no reviews, never NaN
	ReviewCount   int64   `json:"review_count"`
	IsFavorited   *bool   `json:"is_favorited,omitempty"`
}

type ReviewWithAuthor struct {
	Review
	Author User `json:"author"`
}

// ForumWithDetails carries counts computed with COUNT(DISTINCT ...) at the
// query level and the viewer's role when a viewer id was supplied.
type ForumWithDetails struct {
	Forum
	Creator     User    `json:"creator"`
	PostCount   int64   `json:"post_count"`
	MemberCount int64   `json:"member_count"`
	UserRole    *string `json:"user_role,omitempty"`
}

type ForumPostWithDetails struct {
	ForumPost
	Author User  `json:"author"`
	Forum  Forum `json:"forum"`
}

// ForumReplyWithDetails keeps the parent linkage as a plain id; building a
// nested tree is left to the consumer.
type ForumReplyWithDetails struct {
	ForumReply
	Author User `json:"author"`
}

type MessageWithUsers struct {
	Message
	Sender   User `json:"sender"`
	Receiver User `json:"receiver"`
}

// Conversation is derived per viewer from the flat message table: one
// entry per distinct other party.
type Conversation struct {
	OtherUser   User    `json:"other_user"`
	LastMessage Message `json:"last_message"`
	UnreadCount int64   `json:"unread_count"`
}
