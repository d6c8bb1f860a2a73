package service

import "linkcut/internal/entities"

// The three predicates below are the only authorization logic in the
// system. They are pure functions over a URL record and an optional
// authenticated user (nil means anonymous).

// URLExists reports whether a URL record is logically present. A missing
// record and a soft-deleted one are both treated as absent.
func URLExists(url *entities.URL) bool {
	return url != nil && !url.Deleted
}

// CanRead reports whether the caller may read or follow the URL: public
// URLs are readable by anyone, private ones by their owner only.
func CanRead(url *entities.URL, user *entities.User) bool {
	if url.URLType == entities.URLTypePublic {
		return true
	}
	return user != nil && url.UserID != nil && *url.UserID == user.ID
}

// CanUpdate reports whether the caller may update or delete the URL.
// Ownerless URLs are editable by any caller; owned ones by their owner only.
func CanUpdate(url *entities.URL, user *entities.User) bool {
	if url.UserID == nil {
		return true
	}
	return user != nil && *url.UserID == user.ID
}

// ResolveExisting picks the record an idempotent create request should
// return from the candidates matching the original URL. Anonymous callers
// share the first ownerless candidate; authenticated callers get the first
// candidate they own. Nil means no match and a new record must be created.
func ResolveExisting(candidates []*entities.URL, user *entities.User) *entities.URL {
	for _, url := range candidates {
		if user == nil {
			if url.UserID == nil {
				return url
			}
		} else if url.UserID != nil && *url.UserID == user.ID {
			return url
		}
	}
	return nil
}
