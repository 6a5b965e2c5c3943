package scriptpos

// Position identifies one point in the canonical traversal where the
// visitor hands control to a script. The underlying string is the
// position's own name; it does double duty as the stable identifier
// logged in errors and call-stack entries.
type Position string

// The full closed set of traversal positions. Target and ErrorHandler are
// not visited as part of the document walk: Target is invoked once before
// traversal begins (its payload carries only the resolved target
// parameters, not the document) and ErrorHandler is invoked once if the
// command fails.
const (
	Target       Position = "Target"
	ErrorHandler Position = "ErrorHandler"

	VisitSpecStart Position = "VisitSpecStart"
	VisitSpecEnd   Position = "VisitSpecEnd"

	VisitSpecInfoStart   Position = "VisitSpecInfoStart"
	VisitSpecInfoEnd     Position = "VisitSpecInfoEnd"
	VisitSpecInfoContact Position = "VisitSpecInfoContact"
	VisitSpecInfoLicense Position = "VisitSpecInfoLicense"

	VisitServersStart Position = "VisitServersStart"
	VisitServersEnd   Position = "VisitServersEnd"
	VisitServerStart  Position = "VisitServerStart"
	VisitServerEnd    Position = "VisitServerEnd"
	VisitServerVariable Position = "VisitServerVariable"

	VisitSpecTagsStart Position = "VisitSpecTagsStart"
	VisitSpecTagsEnd   Position = "VisitSpecTagsEnd"
	VisitSpecTag       Position = "VisitSpecTag"
	VisitExternalDocs  Position = "VisitExternalDocs"

	VisitSecurityRequirementsStart Position = "VisitSecurityRequirementsStart"
	VisitSecurityRequirement       Position = "VisitSecurityRequirement"
	VisitSecurityRequirementsEnd   Position = "VisitSecurityRequirementsEnd"

	VisitComponentsStart Position = "VisitComponentsStart"
	VisitComponentsEnd   Position = "VisitComponentsEnd"

	VisitPathsStart Position = "VisitPathsStart"
	VisitPathsEnd   Position = "VisitPathsEnd"

	VisitPathItemReferenceStart Position = "VisitPathItemReferenceStart"
	VisitPathItemReferenceEnd   Position = "VisitPathItemReferenceEnd"
	VisitPathItemStart          Position = "VisitPathItemStart"
	VisitPathItemEnd            Position = "VisitPathItemEnd"

	VisitTraceOperationStart   Position = "VisitTraceOperationStart"
	VisitTraceOperationEnd     Position = "VisitTraceOperationEnd"
	VisitPutOperationStart     Position = "VisitPutOperationStart"
	VisitPutOperationEnd       Position = "VisitPutOperationEnd"
	VisitPostOperationStart    Position = "VisitPostOperationStart"
	VisitPostOperationEnd      Position = "VisitPostOperationEnd"
	VisitPatchOperationStart   Position = "VisitPatchOperationStart"
	VisitPatchOperationEnd     Position = "VisitPatchOperationEnd"
	VisitOptionsOperationStart Position = "VisitOptionsOperationStart"
	VisitOptionsOperationEnd   Position = "VisitOptionsOperationEnd"
	VisitHeadOperationStart    Position = "VisitHeadOperationStart"
	VisitHeadOperationEnd      Position = "VisitHeadOperationEnd"
	VisitGetOperationStart     Position = "VisitGetOperationStart"
	VisitGetOperationEnd       Position = "VisitGetOperationEnd"
	VisitDeleteOperationStart  Position = "VisitDeleteOperationStart"
	VisitDeleteOperationEnd    Position = "VisitDeleteOperationEnd"

	VisitParametersStart Position = "VisitParametersStart"
	VisitParametersEnd   Position = "VisitParametersEnd"

	VisitGenericParametersStart Position = "VisitGenericParametersStart"
	VisitGenericParameter       Position = "VisitGenericParameter"
	VisitGenericParametersEnd   Position = "VisitGenericParametersEnd"

	VisitParameterReferenceStart Position = "VisitParameterReferenceStart"
	VisitParameterReferenceEnd   Position = "VisitParameterReferenceEnd"

	VisitQueryParameterStart  Position = "VisitQueryParameterStart"
	VisitQueryParameterEnd    Position = "VisitQueryParameterEnd"
	VisitHeaderParameterStart Position = "VisitHeaderParameterStart"
	VisitHeaderParameterEnd   Position = "VisitHeaderParameterEnd"
	VisitPathParameterStart   Position = "VisitPathParameterStart"
	VisitPathParameterEnd     Position = "VisitPathParameterEnd"
	VisitCookieParameterStart Position = "VisitCookieParameterStart"
	VisitCookieParameterEnd   Position = "VisitCookieParameterEnd"

	VisitParameterDataStart Position = "VisitParameterDataStart"
	VisitParameterDataEnd   Position = "VisitParameterDataEnd"

	VisitParameterSchemaOrContentStart Position = "VisitParameterSchemaOrContentStart"
	VisitParameterSchemaOrContentEnd   Position = "VisitParameterSchemaOrContentEnd"

	VisitRequestBodiesStart      Position = "VisitRequestBodiesStart"
	VisitRequestBodiesEnd        Position = "VisitRequestBodiesEnd"
	VisitRequestBodyReferenceStart Position = "VisitRequestBodyReferenceStart"
	VisitRequestBodyReferenceEnd   Position = "VisitRequestBodyReferenceEnd"
	VisitRequestBodyStart        Position = "VisitRequestBodyStart"
	VisitRequestBodyEnd          Position = "VisitRequestBodyEnd"
	VisitGenericRequestBody      Position = "VisitGenericRequestBody"

	VisitOperationResponsesStart Position = "VisitOperationResponsesStart"
	VisitOperationResponsesEnd   Position = "VisitOperationResponsesEnd"
	VisitResponsesStart          Position = "VisitResponsesStart"
	VisitResponsesEnd            Position = "VisitResponsesEnd"
	VisitResponseReferenceStart  Position = "VisitResponseReferenceStart"
	VisitResponseReferenceEnd    Position = "VisitResponseReferenceEnd"
	VisitResponseStart           Position = "VisitResponseStart"
	VisitResponseEnd             Position = "VisitResponseEnd"

	VisitHeadersStart       Position = "VisitHeadersStart"
	VisitHeadersEnd         Position = "VisitHeadersEnd"
	VisitHeaderReferenceStart Position = "VisitHeaderReferenceStart"
	VisitHeaderReferenceEnd   Position = "VisitHeaderReferenceEnd"
	VisitHeaderStart        Position = "VisitHeaderStart"
	VisitHeaderEnd          Position = "VisitHeaderEnd"

	VisitMediaTypesStart Position = "VisitMediaTypesStart"
	VisitMediaTypesEnd   Position = "VisitMediaTypesEnd"
	VisitMediaTypeStart  Position = "VisitMediaTypeStart"
	VisitMediaTypeEnd    Position = "VisitMediaTypeEnd"

	VisitEncodingsStart Position = "VisitEncodingsStart"
	VisitEncodingsEnd   Position = "VisitEncodingsEnd"
	VisitEncodingStart  Position = "VisitEncodingStart"
	VisitEncodingEnd    Position = "VisitEncodingEnd"

	VisitExamplesStart      Position = "VisitExamplesStart"
	VisitExamplesEnd        Position = "VisitExamplesEnd"
	VisitExampleReferenceStart Position = "VisitExampleReferenceStart"
	VisitExampleReferenceEnd  Position = "VisitExampleReferenceEnd"
	VisitExampleStart       Position = "VisitExampleStart"
	VisitExampleEnd         Position = "VisitExampleEnd"
	VisitGenericExample     Position = "VisitGenericExample"

	VisitLinksStart       Position = "VisitLinksStart"
	VisitLinksEnd         Position = "VisitLinksEnd"
	VisitLinkReferenceStart Position = "VisitLinkReferenceStart"
	VisitLinkReferenceEnd   Position = "VisitLinkReferenceEnd"
	VisitLinkStart        Position = "VisitLinkStart"
	VisitLinkEnd          Position = "VisitLinkEnd"

	VisitAsyncCallbacksStart        Position = "VisitAsyncCallbacksStart"
	VisitAsyncCallbacksEnd          Position = "VisitAsyncCallbacksEnd"
	VisitAsyncCallbackReferenceStart Position = "VisitAsyncCallbackReferenceStart"
	VisitAsyncCallbackReferenceEnd   Position = "VisitAsyncCallbackReferenceEnd"
	VisitAsyncCallbackStart         Position = "VisitAsyncCallbackStart"
	VisitAsyncCallbackEnd           Position = "VisitAsyncCallbackEnd"

	VisitSecuritySchemesStart          Position = "VisitSecuritySchemesStart"
	VisitSecuritySchemesEnd            Position = "VisitSecuritySchemesEnd"
	VisitSecuritySchemeReferenceStart  Position = "VisitSecuritySchemeReferenceStart"
	VisitSecuritySchemeReferenceEnd    Position = "VisitSecuritySchemeReferenceEnd"
	VisitSecuritySchemeApiKey          Position = "VisitSecuritySchemeApiKey"
	VisitSecuritySchemeHttp            Position = "VisitSecuritySchemeHttp"
	VisitSecuritySchemeOpenIdConnect   Position = "VisitSecuritySchemeOpenIdConnect"
	VisitSecuritySchemeOAuth2Start     Position = "VisitSecuritySchemeOAuth2Start"
	VisitSecuritySchemeOAuth2End       Position = "VisitSecuritySchemeOAuth2End"
	VisitSecuritySchemeOAuth2FlowsStart Position = "VisitSecuritySchemeOAuth2FlowsStart"
	VisitSecuritySchemeOAuth2FlowsEnd   Position = "VisitSecuritySchemeOAuth2FlowsEnd"

	VisitSecuritySchemeOAuth2FlowImplicit          Position = "VisitSecuritySchemeOAuth2FlowImplicit"
	VisitSecuritySchemeOAuth2FlowPassword          Position = "VisitSecuritySchemeOAuth2FlowPassword"
	VisitSecuritySchemeOAuth2FlowClientCredentials Position = "VisitSecuritySchemeOAuth2FlowClientCredentials"
	VisitSecuritySchemeOAuth2FlowAuthorizationCode Position = "VisitSecuritySchemeOAuth2FlowAuthorizationCode"

	VisitSchemasStart          Position = "VisitSchemasStart"
	VisitSchemasEnd            Position = "VisitSchemasEnd"
	VisitSchemaReferenceStart  Position = "VisitSchemaReferenceStart"
	VisitSchemaReferenceEnd    Position = "VisitSchemaReferenceEnd"
	VisitSchemaStart           Position = "VisitSchemaStart"
	VisitSchemaEnd             Position = "VisitSchemaEnd"
	VisitDiscriminator         Position = "VisitDiscriminator"
	VisitDefault               Position = "VisitDefault"

	VisitObjectStart                  Position = "VisitObjectStart"
	VisitObjectEnd                    Position = "VisitObjectEnd"
	VisitObjectPropertiesStart        Position = "VisitObjectPropertiesStart"
	VisitObjectPropertiesEnd          Position = "VisitObjectPropertiesEnd"
	VisitObjectPropertyReferenceStart Position = "VisitObjectPropertyReferenceStart"
	VisitObjectPropertyReferenceEnd   Position = "VisitObjectPropertyReferenceEnd"
	VisitObjectPropertyStart          Position = "VisitObjectPropertyStart"
	VisitObjectPropertyEnd            Position = "VisitObjectPropertyEnd"
	VisitAdditionalPropertiesAny      Position = "VisitAdditionalPropertiesAny"
	VisitAdditionalPropertiesStart    Position = "VisitAdditionalPropertiesStart"
	VisitAdditionalPropertiesEnd      Position = "VisitAdditionalPropertiesEnd"

	VisitArrayPropertyStart Position = "VisitArrayPropertyStart"
	VisitArrayPropertyEnd   Position = "VisitArrayPropertyEnd"
	VisitStringProperty     Position = "VisitStringProperty"
	VisitNumberProperty     Position = "VisitNumberProperty"
	VisitIntegerProperty    Position = "VisitIntegerProperty"
	VisitBooleanProperty    Position = "VisitBooleanProperty"
	VisitAnySchemaStart     Position = "VisitAnySchemaStart"
	VisitAnySchemaEnd       Position = "VisitAnySchemaEnd"
	VisitPropertyNotStart   Position = "VisitPropertyNotStart"
	VisitPropertyNotEnd     Position = "VisitPropertyNotEnd"

	VisitOneOfStart Position = "VisitOneOfStart"
	VisitOneOfEnd   Position = "VisitOneOfEnd"
	VisitAllOfStart Position = "VisitAllOfStart"
	VisitAllOfEnd   Position = "VisitAllOfEnd"
	VisitAnyOfStart Position = "VisitAnyOfStart"
	VisitAnyOfEnd   Position = "VisitAnyOfEnd"
)

// All lists every position in the closed set, used by Validate. The
// scripting runtime does not read it: it compiles each script the first
// time its position is loaded.
var All = []Position{
	Target, ErrorHandler,
	VisitSpecStart, VisitSpecEnd,
	VisitSpecInfoStart, VisitSpecInfoEnd, VisitSpecInfoContact, VisitSpecInfoLicense,
	VisitServersStart, VisitServersEnd, VisitServerStart, VisitServerEnd, VisitServerVariable,
	VisitSpecTagsStart, VisitSpecTagsEnd, VisitSpecTag, VisitExternalDocs,
	VisitSecurityRequirementsStart, VisitSecurityRequirement, VisitSecurityRequirementsEnd,
	VisitComponentsStart, VisitComponentsEnd,
	VisitPathsStart, VisitPathsEnd,
	VisitPathItemReferenceStart, VisitPathItemReferenceEnd, VisitPathItemStart, VisitPathItemEnd,
	VisitTraceOperationStart, VisitTraceOperationEnd,
	VisitPutOperationStart, VisitPutOperationEnd,
	VisitPostOperationStart, VisitPostOperationEnd,
	VisitPatchOperationStart, VisitPatchOperationEnd,
	VisitOptionsOperationStart, VisitOptionsOperationEnd,
	VisitHeadOperationStart, VisitHeadOperationEnd,
	VisitGetOperationStart, VisitGetOperationEnd,
	VisitDeleteOperationStart, VisitDeleteOperationEnd,
	VisitParametersStart, VisitParametersEnd,
	VisitGenericParametersStart, VisitGenericParameter, VisitGenericParametersEnd,
	VisitParameterReferenceStart, VisitParameterReferenceEnd,
	VisitQueryParameterStart, VisitQueryParameterEnd,
	VisitHeaderParameterStart, VisitHeaderParameterEnd,
	VisitPathParameterStart, VisitPathParameterEnd,
	VisitCookieParameterStart, VisitCookieParameterEnd,
	VisitParameterDataStart, VisitParameterDataEnd,
	VisitParameterSchemaOrContentStart, VisitParameterSchemaOrContentEnd,
	VisitRequestBodiesStart, VisitRequestBodiesEnd,
	VisitRequestBodyReferenceStart, VisitRequestBodyReferenceEnd,
	VisitRequestBodyStart, VisitRequestBodyEnd, VisitGenericRequestBody,
	VisitOperationResponsesStart, VisitOperationResponsesEnd,
	VisitResponsesStart, VisitResponsesEnd,
	VisitResponseReferenceStart, VisitResponseReferenceEnd,
	VisitResponseStart, VisitResponseEnd,
	VisitHeadersStart, VisitHeadersEnd,
	VisitHeaderReferenceStart, VisitHeaderReferenceEnd,
	VisitHeaderStart, VisitHeaderEnd,
	VisitMediaTypesStart, VisitMediaTypesEnd, VisitMediaTypeStart, VisitMediaTypeEnd,
	VisitEncodingsStart, VisitEncodingsEnd, VisitEncodingStart, VisitEncodingEnd,
	VisitExamplesStart, VisitExamplesEnd,
	VisitExampleReferenceStart, VisitExampleReferenceEnd,
	VisitExampleStart, VisitExampleEnd, VisitGenericExample,
	VisitLinksStart, VisitLinksEnd,
	VisitLinkReferenceStart, VisitLinkReferenceEnd,
	VisitLinkStart, VisitLinkEnd,
	VisitAsyncCallbacksStart, VisitAsyncCallbacksEnd,
	VisitAsyncCallbackReferenceStart, VisitAsyncCallbackReferenceEnd,
	VisitAsyncCallbackStart, VisitAsyncCallbackEnd,
	VisitSecuritySchemesStart, VisitSecuritySchemesEnd,
	VisitSecuritySchemeReferenceStart, VisitSecuritySchemeReferenceEnd,
	VisitSecuritySchemeApiKey, VisitSecuritySchemeHttp, VisitSecuritySchemeOpenIdConnect,
	VisitSecuritySchemeOAuth2Start, VisitSecuritySchemeOAuth2End,
	VisitSecuritySchemeOAuth2FlowsStart, VisitSecuritySchemeOAuth2FlowsEnd,
	VisitSecuritySchemeOAuth2FlowImplicit, VisitSecuritySchemeOAuth2FlowPassword,
	VisitSecuritySchemeOAuth2FlowClientCredentials, VisitSecuritySchemeOAuth2FlowAuthorizationCode,
	VisitSchemasStart, VisitSchemasEnd,
	VisitSchemaReferenceStart, VisitSchemaReferenceEnd,
	VisitSchemaStart, VisitSchemaEnd, VisitDiscriminator, VisitDefault,
	VisitObjectStart, VisitObjectEnd,
	VisitObjectPropertiesStart, VisitObjectPropertiesEnd,
	VisitObjectPropertyReferenceStart, VisitObjectPropertyReferenceEnd,
	VisitObjectPropertyStart, VisitObjectPropertyEnd,
	VisitAdditionalPropertiesAny, VisitAdditionalPropertiesStart, VisitAdditionalPropertiesEnd,
	VisitArrayPropertyStart, VisitArrayPropertyEnd,
	VisitStringProperty, VisitNumberProperty, VisitIntegerProperty, VisitBooleanProperty,
	VisitAnySchemaStart, VisitAnySchemaEnd,
	VisitPropertyNotStart, VisitPropertyNotEnd,
	VisitOneOfStart, VisitOneOfEnd,
	VisitAllOfStart, VisitAllOfEnd,
	VisitAnyOfStart, VisitAnyOfEnd,
}
