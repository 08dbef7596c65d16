package store

import "tracker/models"

// normalizeIssue converts absent relations loaded as zero-value records into
// nil pointers. Applied uniformly at the store boundary so callers never see
// a half-populated user where there is none.
func normalizeIssue(issue *models.Issue) {
	issue.Reporter = normalizeUser(issue.Reporter)
	issue.Assignee = normalizeUser(issue.Assignee)
}

func normalizeUser(u *models.User) *models.User {
	if u == nil || u.ID == "" {
		return nil
	}
	return u
}
