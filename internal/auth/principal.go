package auth

import "fmt"

// ResolvePrincipal loads the user record behind a verified credential and
// shapes it into a Principal. The password hash never leaves the store layer.
//
// A missing user (deleted after the token was issued) comes back as
// ErrNotFound; callers must treat that the same as an invalid credential,
// not as a server error. A role outside the closed enumeration is also
// rejected here so nothing downstream ever sees an unknown role.
func ResolvePrincipal(store UserStore, userID string) (Principal, error) {
	user, err := store.FindByID(userID)
	if err != nil {
		return Principal{}, err
	}
	if !user.Role.Valid() {
		return Principal{}, fmt.Errorf("user %s has unknown role %q", userID, user.Role)
	}
	return Principal{
		UserID:      user.UserID,
		Role:        user.Role,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
	}, nil
}
