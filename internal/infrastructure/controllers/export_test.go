package controllers

// LoadSettings exports loadSettings for testing.
var LoadSettings = loadSettings //nolint:gochecknoglobals // test export

// ProjectDir exports projectDir for testing.
var ProjectDir = projectDir //nolint:gochecknoglobals // test export
