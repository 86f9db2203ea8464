package domain

import "errors"

var ErrEmptyCredentials = errors.New("username and password are required")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserExists = errors.New("username already taken")
var ErrUserNotFound = errors.New("user not found")

var ErrTaskNotFound = errors.New("task not found")
var ErrEmptyTaskName = errors.New("task name is required")
