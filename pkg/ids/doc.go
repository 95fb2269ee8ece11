// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package ids implements the validated identifier types used by OICP messages.

Every identifier is an immutable value that can only hold text accepted by
its grammar. Each type offers Parse<T> (returns an error), TryParse<T>
(returns ok), String (the canonical wire form), Equal, Compare and
encoding.TextMarshaler support.

# Case rules

EVSE, operator, provider and EVCO identifiers are case-insensitive in the
protocol and are normalized to upper case when parsed. UIDs keep their exact
casing for the wire but compare case-insensitively. Session identifiers are
UUIDs rendered in canonical lower case. Partner session, partner product,
clearing house and charging station identifiers are opaque text compared
exactly.

# Grammars

	EVSEID      CC*OOO*[E]suffix  or  +CC*OOO*digits
	OperatorID  CC*OOO            or  +CC*OOO
	ProviderID  CC-PPP
	EVCOID      CC-PPP-C12345678-X  or  CC*PPP*123456*X
	UID         8, 14 or 20 hexadecimal digits
	SessionID   RFC 4122 UUID
*/
package ids
