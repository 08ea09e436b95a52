// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the one-shot registry client: it runs a single
// operation against the server and renders the result for a terminal.
package client
