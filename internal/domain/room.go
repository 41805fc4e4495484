package domain

import "time"

// Room is an instructor-owned grouping of problems and members.
type Room struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	GroupName  string    `json:"groupName" db:"group_name"`
	AuthorName string    `json:"authorName" db:"author_name"`
	LogoURL    string    `json:"logoUrl" db:"logo_url"`
	OwnerID    string    `json:"ownerId" db:"owner_id"`
	Public     bool      `json:"public" db:"public"`
	Members    []string  `json:"members"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	Problems   []Problem `json:"problems"`
}

// AccessibleBy reports whether the given user may read the room and submit
// solutions: the room is public, or the user owns it, or is a member.
func (r *Room) AccessibleBy(userID string) bool {
	if r.Public || r.OwnerID == userID {
		return true
	}
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// IsMember reports whether the user is on the member list.
func (r *Room) IsMember(userID string) bool {
	for _, m := range r.Members {
		if m == userID {
			return true
		}
	}
	return false
}

// FindProblem returns the problem with the given id, or nil.
func (r *Room) FindProblem(problemID string) *Problem {
	for i := range r.Problems {
		if r.Problems[i].ID == problemID {
			return &r.Problems[i]
		}
	}
	return nil
}

// RemoveProblem deletes the problem with the given id from the room and
// reports whether it was present.
func (r *Room) RemoveProblem(problemID string) bool {
	for i := range r.Problems {
		if r.Problems[i].ID == problemID {
			r.Problems = append(r.Problems[:i], r.Problems[i+1:]...)
			return true
		}
	}
	return false
}
