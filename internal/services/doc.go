// Package services contains the application services behind the shell:
// UserService maintains the record store and SendService drives the three
// send modes (one stored user, all stored users, a batch file).
//
// Services return structured outcomes; rendering them is the shell's job.
package services
