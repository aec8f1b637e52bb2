// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive card portfolio application.
//
// It opens the configured workbook backend, wires the account and portfolio
// services over it, and runs the terminal UI until the user quits.
package client
