// Package users implements the user record store: a flat CSV file holding
// username, email, salt, pw_hash and created_at per row.
//
// The file is always rewritten in full. SaveAll writes to a temporary file in
// the same directory and renames it over the original, so a crash leaves
// either the old or the new contents. Loading is permissive: short rows get
// empty fields, extra columns are ignored and duplicate usernames are passed
// through with a warning.
package users
