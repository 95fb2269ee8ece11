// Copyright (c) 2025 SIROS Foundation
// SPDX-License-Identifier: BSD-2-Clause

/*
Package wire provides the plumbing shared by every OICP message codec.

# XML

The legacy OICP protocol generations exchange namespace-qualified SOAP body
fragments. Elements are handled as [github.com/beevik/etree] trees. Each
message family has its own namespace and canonical prefix:

	CommonTypes          http://www.hubject.com/b2b/services/commontypes/v2.0
	EVSEData             http://www.hubject.com/b2b/services/evsedata/v2.1
	EVSEStatus           http://www.hubject.com/b2b/services/evsestatus/v2.1
	Authorization        http://www.hubject.com/b2b/services/authorization/v2.0
	Reservation          http://www.hubject.com/b2b/services/reservation/v1.0
	AuthenticationData   http://www.hubject.com/b2b/services/authenticationdata/v2.0
	MobileAuthorization  http://www.hubject.com/b2b/services/mobileauthorization/v2.0

Elements are matched by namespace URI when the document declares it, and by
canonical prefix otherwise, so fragments built in memory and fragments read
from a declared document are treated the same way.

# JSON

The current protocol generation uses one JSON object per message. Objects are
handled as [JSONObject] values decoded with json.Number so that decimal
values survive unchanged.

# Formatting

Decimals are written fixed-point with at most three fraction digits and a
literal '.', timestamps as ISO-8601 with milliseconds and a literal 'Z', and
XML booleans as lowercase text.

# Customization

Every parser and serializer accepts an optional hook ([CustomXMLParser],
[CustomXMLSerializer], [CustomJSONParser], [CustomJSONSerializer]). A hook
runs once, after the built-in mapping succeeded, and may replace the result.

# Diagnostics

Parsers never panic. Failures are returned as [*ParseError] and also
delivered to an optional [ErrorHandler]; [LogErrors] adapts a *slog.Logger.
*/
package wire
