// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package wizard implements the observation capture flow.

# States

	SelectingImage ──SelectImage──▶ EditingMetadata ──Submit──▶ Submitted
	       ▲                                                        │
	       └─────────────────────────Reset──────────────────────────┘

A canceled pick leaves everything as it was. A failed location lookup
is shown in View().Error but the wizard still moves on. A failed
submission keeps the draft and sets the error to "submission failed".

# Fields

Config names the active fields and the ones required before Submit.
DefaultConfig requires species, observed_count, gender and age. Inactive
gender and age are sent as "Onbekend"; an inactive count is sent as 1.

# Timestamps

The image's capture time is used when present, then the asset's
modification time. With neither, Submit stamps the current time.

# Concurrency

Only one provider call (pick, locate, submit) runs at a time. A second
call while one is outstanding returns ErrBusy, and so do field edits;
View().Loading reports the outstanding call.
*/
package wizard
