package visitor

import "github.com/erraggy/oastranslator/scriptpos"

// Local short aliases for every scriptpos.Position, so the traversal
// functions below can read as plain calls (e.g. e.start(..., posVisitSchemaStart, ...))
// instead of repeating the scriptpos. qualifier at every call site.
const (
	posTarget       = scriptpos.Target
	posErrorHandler = scriptpos.ErrorHandler

	posVisitSpecStart = scriptpos.VisitSpecStart
	posVisitSpecEnd   = scriptpos.VisitSpecEnd

	posVisitSpecInfoStart   = scriptpos.VisitSpecInfoStart
	posVisitSpecInfoEnd     = scriptpos.VisitSpecInfoEnd
	posVisitSpecInfoContact = scriptpos.VisitSpecInfoContact
	posVisitSpecInfoLicense = scriptpos.VisitSpecInfoLicense

	posVisitServersStart  = scriptpos.VisitServersStart
	posVisitServersEnd    = scriptpos.VisitServersEnd
	posVisitServerStart   = scriptpos.VisitServerStart
	posVisitServerEnd     = scriptpos.VisitServerEnd
	posVisitServerVariable = scriptpos.VisitServerVariable

	posVisitSpecTagsStart = scriptpos.VisitSpecTagsStart
	posVisitSpecTagsEnd   = scriptpos.VisitSpecTagsEnd
	posVisitSpecTag       = scriptpos.VisitSpecTag
	posVisitExternalDocs  = scriptpos.VisitExternalDocs

	posVisitSecurityRequirementsStart = scriptpos.VisitSecurityRequirementsStart
	posVisitSecurityRequirement       = scriptpos.VisitSecurityRequirement
	posVisitSecurityRequirementsEnd   = scriptpos.VisitSecurityRequirementsEnd

	posVisitComponentsStart = scriptpos.VisitComponentsStart
	posVisitComponentsEnd   = scriptpos.VisitComponentsEnd

	posVisitPathsStart = scriptpos.VisitPathsStart
	posVisitPathsEnd   = scriptpos.VisitPathsEnd

	posVisitPathItemReferenceStart = scriptpos.VisitPathItemReferenceStart
	posVisitPathItemReferenceEnd   = scriptpos.VisitPathItemReferenceEnd
	posVisitPathItemStart          = scriptpos.VisitPathItemStart
	posVisitPathItemEnd            = scriptpos.VisitPathItemEnd

	posVisitTraceOperationStart   = scriptpos.VisitTraceOperationStart
	posVisitTraceOperationEnd     = scriptpos.VisitTraceOperationEnd
	posVisitPutOperationStart     = scriptpos.VisitPutOperationStart
	posVisitPutOperationEnd       = scriptpos.VisitPutOperationEnd
	posVisitPostOperationStart    = scriptpos.VisitPostOperationStart
	posVisitPostOperationEnd      = scriptpos.VisitPostOperationEnd
	posVisitPatchOperationStart   = scriptpos.VisitPatchOperationStart
	posVisitPatchOperationEnd     = scriptpos.VisitPatchOperationEnd
	posVisitOptionsOperationStart = scriptpos.VisitOptionsOperationStart
	posVisitOptionsOperationEnd   = scriptpos.VisitOptionsOperationEnd
	posVisitHeadOperationStart    = scriptpos.VisitHeadOperationStart
	posVisitHeadOperationEnd      = scriptpos.VisitHeadOperationEnd
	posVisitGetOperationStart     = scriptpos.VisitGetOperationStart
	posVisitGetOperationEnd       = scriptpos.VisitGetOperationEnd
	posVisitDeleteOperationStart  = scriptpos.VisitDeleteOperationStart
	posVisitDeleteOperationEnd    = scriptpos.VisitDeleteOperationEnd

	posVisitParametersStart = scriptpos.VisitParametersStart
	posVisitParametersEnd   = scriptpos.VisitParametersEnd

	posVisitGenericParametersStart = scriptpos.VisitGenericParametersStart
	posVisitGenericParameter       = scriptpos.VisitGenericParameter
	posVisitGenericParametersEnd   = scriptpos.VisitGenericParametersEnd

	posVisitParameterReferenceStart = scriptpos.VisitParameterReferenceStart
	posVisitParameterReferenceEnd   = scriptpos.VisitParameterReferenceEnd

	posVisitQueryParameterStart  = scriptpos.VisitQueryParameterStart
	posVisitQueryParameterEnd    = scriptpos.VisitQueryParameterEnd
	posVisitHeaderParameterStart = scriptpos.VisitHeaderParameterStart
	posVisitHeaderParameterEnd   = scriptpos.VisitHeaderParameterEnd
	posVisitPathParameterStart   = scriptpos.VisitPathParameterStart
	posVisitPathParameterEnd     = scriptpos.VisitPathParameterEnd
	posVisitCookieParameterStart = scriptpos.VisitCookieParameterStart
	posVisitCookieParameterEnd   = scriptpos.VisitCookieParameterEnd

	posVisitParameterDataStart = scriptpos.VisitParameterDataStart
	posVisitParameterDataEnd   = scriptpos.VisitParameterDataEnd

	posVisitParameterSchemaOrContentStart = scriptpos.VisitParameterSchemaOrContentStart
	posVisitParameterSchemaOrContentEnd   = scriptpos.VisitParameterSchemaOrContentEnd

	posVisitRequestBodiesStart        = scriptpos.VisitRequestBodiesStart
	posVisitRequestBodiesEnd          = scriptpos.VisitRequestBodiesEnd
	posVisitRequestBodyReferenceStart = scriptpos.VisitRequestBodyReferenceStart
	posVisitRequestBodyReferenceEnd   = scriptpos.VisitRequestBodyReferenceEnd
	posVisitRequestBodyStart          = scriptpos.VisitRequestBodyStart
	posVisitRequestBodyEnd            = scriptpos.VisitRequestBodyEnd
	posVisitGenericRequestBody        = scriptpos.VisitGenericRequestBody

	posVisitOperationResponsesStart = scriptpos.VisitOperationResponsesStart
	posVisitOperationResponsesEnd   = scriptpos.VisitOperationResponsesEnd
	posVisitResponsesStart          = scriptpos.VisitResponsesStart
	posVisitResponsesEnd            = scriptpos.VisitResponsesEnd
	posVisitResponseReferenceStart  = scriptpos.VisitResponseReferenceStart
	posVisitResponseReferenceEnd    = scriptpos.VisitResponseReferenceEnd
	posVisitResponseStart           = scriptpos.VisitResponseStart
	posVisitResponseEnd             = scriptpos.VisitResponseEnd

	posVisitHeadersStart         = scriptpos.VisitHeadersStart
	posVisitHeadersEnd           = scriptpos.VisitHeadersEnd
	posVisitHeaderReferenceStart = scriptpos.VisitHeaderReferenceStart
	posVisitHeaderReferenceEnd   = scriptpos.VisitHeaderReferenceEnd
	posVisitHeaderStart          = scriptpos.VisitHeaderStart
	posVisitHeaderEnd            = scriptpos.VisitHeaderEnd

	posVisitMediaTypesStart = scriptpos.VisitMediaTypesStart
	posVisitMediaTypesEnd   = scriptpos.VisitMediaTypesEnd
	posVisitMediaTypeStart  = scriptpos.VisitMediaTypeStart
	posVisitMediaTypeEnd    = scriptpos.VisitMediaTypeEnd

	posVisitEncodingsStart = scriptpos.VisitEncodingsStart
	posVisitEncodingsEnd   = scriptpos.VisitEncodingsEnd
	posVisitEncodingStart  = scriptpos.VisitEncodingStart
	posVisitEncodingEnd    = scriptpos.VisitEncodingEnd

	posVisitExamplesStart        = scriptpos.VisitExamplesStart
	posVisitExamplesEnd          = scriptpos.VisitExamplesEnd
	posVisitExampleReferenceStart = scriptpos.VisitExampleReferenceStart
	posVisitExampleReferenceEnd   = scriptpos.VisitExampleReferenceEnd
	posVisitExampleStart         = scriptpos.VisitExampleStart
	posVisitExampleEnd           = scriptpos.VisitExampleEnd
	posVisitGenericExample       = scriptpos.VisitGenericExample

	posVisitLinksStart         = scriptpos.VisitLinksStart
	posVisitLinksEnd           = scriptpos.VisitLinksEnd
	posVisitLinkReferenceStart = scriptpos.VisitLinkReferenceStart
	posVisitLinkReferenceEnd   = scriptpos.VisitLinkReferenceEnd
	posVisitLinkStart          = scriptpos.VisitLinkStart
	posVisitLinkEnd            = scriptpos.VisitLinkEnd

	posVisitAsyncCallbacksStart         = scriptpos.VisitAsyncCallbacksStart
	posVisitAsyncCallbacksEnd           = scriptpos.VisitAsyncCallbacksEnd
	posVisitAsyncCallbackReferenceStart = scriptpos.VisitAsyncCallbackReferenceStart
	posVisitAsyncCallbackReferenceEnd   = scriptpos.VisitAsyncCallbackReferenceEnd
	posVisitAsyncCallbackStart          = scriptpos.VisitAsyncCallbackStart
	posVisitAsyncCallbackEnd            = scriptpos.VisitAsyncCallbackEnd

	posVisitSecuritySchemesStart          = scriptpos.VisitSecuritySchemesStart
	posVisitSecuritySchemesEnd            = scriptpos.VisitSecuritySchemesEnd
	posVisitSecuritySchemeReferenceStart  = scriptpos.VisitSecuritySchemeReferenceStart
	posVisitSecuritySchemeReferenceEnd    = scriptpos.VisitSecuritySchemeReferenceEnd
	posVisitSecuritySchemeApiKey          = scriptpos.VisitSecuritySchemeApiKey
	posVisitSecuritySchemeHttp            = scriptpos.VisitSecuritySchemeHttp
	posVisitSecuritySchemeOpenIdConnect   = scriptpos.VisitSecuritySchemeOpenIdConnect
	posVisitSecuritySchemeOAuth2Start     = scriptpos.VisitSecuritySchemeOAuth2Start
	posVisitSecuritySchemeOAuth2End       = scriptpos.VisitSecuritySchemeOAuth2End
	posVisitSecuritySchemeOAuth2FlowsStart = scriptpos.VisitSecuritySchemeOAuth2FlowsStart
	posVisitSecuritySchemeOAuth2FlowsEnd   = scriptpos.VisitSecuritySchemeOAuth2FlowsEnd

	posVisitSecuritySchemeOAuth2FlowImplicit          = scriptpos.VisitSecuritySchemeOAuth2FlowImplicit
	posVisitSecuritySchemeOAuth2FlowPassword          = scriptpos.VisitSecuritySchemeOAuth2FlowPassword
	posVisitSecuritySchemeOAuth2FlowClientCredentials = scriptpos.VisitSecuritySchemeOAuth2FlowClientCredentials
	posVisitSecuritySchemeOAuth2FlowAuthorizationCode = scriptpos.VisitSecuritySchemeOAuth2FlowAuthorizationCode

	posVisitSchemasStart         = scriptpos.VisitSchemasStart
	posVisitSchemasEnd           = scriptpos.VisitSchemasEnd
	posVisitSchemaReferenceStart = scriptpos.VisitSchemaReferenceStart
	posVisitSchemaReferenceEnd   = scriptpos.VisitSchemaReferenceEnd
	posVisitSchemaStart          = scriptpos.VisitSchemaStart
	posVisitSchemaEnd            = scriptpos.VisitSchemaEnd
	posVisitDiscriminator        = scriptpos.VisitDiscriminator
	posVisitDefault              = scriptpos.VisitDefault

	posVisitObjectStart                  = scriptpos.VisitObjectStart
	posVisitObjectEnd                    = scriptpos.VisitObjectEnd
	posVisitObjectPropertiesStart        = scriptpos.VisitObjectPropertiesStart
	posVisitObjectPropertiesEnd          = scriptpos.VisitObjectPropertiesEnd
	posVisitObjectPropertyReferenceStart = scriptpos.VisitObjectPropertyReferenceStart
	posVisitObjectPropertyReferenceEnd   = scriptpos.VisitObjectPropertyReferenceEnd
	posVisitObjectPropertyStart          = scriptpos.VisitObjectPropertyStart
	posVisitObjectPropertyEnd            = scriptpos.VisitObjectPropertyEnd
	posVisitAdditionalPropertiesAny      = scriptpos.VisitAdditionalPropertiesAny
	posVisitAdditionalPropertiesStart    = scriptpos.VisitAdditionalPropertiesStart
	posVisitAdditionalPropertiesEnd      = scriptpos.VisitAdditionalPropertiesEnd

	posVisitArrayPropertyStart = scriptpos.VisitArrayPropertyStart
	posVisitArrayPropertyEnd   = scriptpos.VisitArrayPropertyEnd
	posVisitStringProperty     = scriptpos.VisitStringProperty
	posVisitNumberProperty     = scriptpos.VisitNumberProperty
	posVisitIntegerProperty    = scriptpos.VisitIntegerProperty
	posVisitBooleanProperty    = scriptpos.VisitBooleanProperty
	posVisitAnySchemaStart     = scriptpos.VisitAnySchemaStart
	posVisitAnySchemaEnd       = scriptpos.VisitAnySchemaEnd
	posVisitPropertyNotStart   = scriptpos.VisitPropertyNotStart
	posVisitPropertyNotEnd     = scriptpos.VisitPropertyNotEnd

	posVisitOneOfStart = scriptpos.VisitOneOfStart
	posVisitOneOfEnd   = scriptpos.VisitOneOfEnd
	posVisitAllOfStart = scriptpos.VisitAllOfStart
	posVisitAllOfEnd   = scriptpos.VisitAllOfEnd
	posVisitAnyOfStart = scriptpos.VisitAnyOfStart
	posVisitAnyOfEnd   = scriptpos.VisitAnyOfEnd
)
