package aggregate

import (
	"sort"

	"animehub/internal/models"
)

// DeriveConversations reconstructs the viewer's conversation list from the
// flat, symmetric message table: one entry per distinct other party, with
// the most recent message and the count of unread rows addressed to the
// viewer. Messages a user sent to themselves group under their own id.
//
// The fold is order-independent; the final list is ordered by the last
// message timestamp, newest first, as the conversation contract requires.
func DeriveConversations(viewerID string, msgs []models.Message) []models.Conversation {
	type bucket struct {
		otherUser models.User
		last      models.Message
		unread    int64
	}

	buckets := make(map[string]*bucket)
	order := make([]string, 0)

	for _, m := range msgs {
		otherID := m.SenderID
		otherUser := m.Sender
		if m.SenderID == viewerID {
			otherID = m.ReceiverID
			otherUser = m.Receiver
		}

		b, ok := buckets[otherID]
		if !ok {
			b = &bucket{otherUser: otherUser, last: m}
			buckets[otherID] = b
			order = append(order, otherID)
		} else if m.CreatedAt.After(b.last.CreatedAt) {
			b.last = m
		}

		if m.ReceiverID == viewerID && !m.IsRead {
			b.unread++
		}
	}

	result := make([]models.Conversation, 0, len(order))
	for _, id := range order {
		b := buckets[id]
		result = append(result, models.Conversation{
			OtherUser:   b.otherUser,
			LastMessage: b.last,
			UnreadCount: b.unread,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].LastMessage.CreatedAt.After(result[j].LastMessage.CreatedAt)
	})
	return result
}
