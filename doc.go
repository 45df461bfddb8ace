// Package main provides the tailnav command.
// It renders a responsive Tailwind navigation bar, either printed for a
// given path or served on every page of a small fiber web site. The menu is
// read from the config file or from a database through gorm.
package main
