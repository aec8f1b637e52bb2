// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package admin implements the maintenance subcommands of portfolio-admin:
// seeding a workbook, checking its consistency and hashing passwords for
// manual credential edits.
package admin
