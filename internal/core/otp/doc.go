// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package otp issues, verifies and "delivers" the one-time codes that gate a
language switch.

Nothing here is a security control. Delivery only logs the destination, and
the default code is a fixed literal. The pieces are still split the way a real
verifier would be:

  - [Authority] issues a code per auth session and checks submissions.
  - [ChallengeStore] keeps issued codes with a TTL (memory or Redis).
  - [Sender] hands the code to a delivery medium.
*/
package otp
