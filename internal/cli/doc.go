// Package cli provides the interactive mailadmin shell.
//
// It wires configuration, the user record store, the message builder and the
// mail transport behind a numbered menu. Typical flow: ensure the users file
// exists, pass the admin gate, then loop over menu choices until 0 or EOF.
//
// Menu:
//   - 1 add user, 2 remove user, 3 show users, 4 export users
//   - 5 send welcome to one stored user
//   - 6 send welcome to all stored users
//   - 7 send welcome to the recipients of the batch file
//   - 0 exit
//
// Each choice runs under its own interrupt-aware context, so Ctrl-C during a
// bulk send stops that send (the relay session is still closed) and returns
// to the menu. See App.Run and runREPL.
package cli
