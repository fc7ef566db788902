// Package repository builds and runs the statements that read and create
// animals. Every builder binds its values as query arguments, and every
// read or insert issues at most one statement on the handle it was given.
package repository
