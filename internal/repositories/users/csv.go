package users

// Header is the column order of the backing file.
var Header = []string{"username", "email", "salt", "pw_hash", "created_at"}

func (r Record) row() []string {
	return []string{r.Username, r.Email, r.Salt, r.PasswordHash, r.CreatedAt}
}

// fromRow maps a data row onto a Record using the column positions found in
// the header. Missing columns leave the field empty.
func fromRow(index map[string]int, row []string) Record {
	get := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
	return Record{
		Username:     get("username"),
		Email:        get("email"),
		Salt:         get("salt"),
		PasswordHash: get("pw_hash"),
		CreatedAt:    get("created_at"),
	}
}

func headerIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	return index
}
