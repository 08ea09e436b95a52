// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package roconuri parses rocon compatibility addresses and decides whether
// two of them are compatible.
//
// A rocon URI has the form
//
//	rocon://concert/hardware_platform/name/application_framework/operating_system#rapp
//
// where the concert name, every path field and the fragment are optional.
// Missing fields are wildcards ("*"). A field is either "*" or a list of
// alternatives separated by "|", e.g. "rocon:/turtlebot2|pc/*/hydro|indigo".
package roconuri
