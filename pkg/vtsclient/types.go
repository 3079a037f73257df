package vtsclient

import "encoding/json"

// ========================= типы сообщений =========================

const (
	MessageTypeAPIError = "APIError"

	MessageTypeAuthenticationTokenRequest  = "AuthenticationTokenRequest"
	MessageTypeAuthenticationTokenResponse = "AuthenticationTokenResponse"
	MessageTypeAuthenticationRequest       = "AuthenticationRequest"
	MessageTypeAuthenticationResponse      = "AuthenticationResponse"

	MessageTypeStatisticsRequest    = "StatisticsRequest"
	MessageTypeVTSFolderInfoRequest = "VTSFolderInfoRequest"

	MessageTypeCurrentModelRequest    = "CurrentModelRequest"
	MessageTypeAvailableModelsRequest = "AvailableModelsRequest"
	MessageTypeModelLoadRequest       = "ModelLoadRequest"
	MessageTypeMoveModelRequest       = "MoveModelRequest"

	MessageTypeHotkeysInCurrentModelRequest = "HotkeysInCurrentModelRequest"
	MessageTypeHotkeyTriggerRequest         = "HotkeyTriggerRequest"

	MessageTypeExpressionStateRequest      = "ExpressionStateRequest"
	MessageTypeExpressionActivationRequest = "ExpressionActivationRequest"

	MessageTypeArtMeshListRequest         = "ArtMeshListRequest"
	MessageTypeFaceFoundRequest           = "FaceFoundRequest"
	MessageTypeInputParameterListRequest  = "InputParameterListRequest"
	MessageTypeParameterValueRequest      = "ParameterValueRequest"
	MessageTypeLive2DParameterListRequest = "Live2DParameterListRequest"
	MessageTypeParameterCreationRequest   = "ParameterCreationRequest"
	MessageTypeParameterDeletionRequest   = "ParameterDeletionRequest"
	MessageTypeInjectParameterDataRequest = "InjectParameterDataRequest"

	MessageTypeNDIConfigRequest = "NDIConfigRequest"

	MessageTypeItemListRequest   = "ItemListRequest"
	MessageTypeItemLoadRequest   = "ItemLoadRequest"
	MessageTypeItemUnloadRequest = "ItemUnloadRequest"
	MessageTypeItemMoveRequest   = "ItemMoveRequest"

	MessageTypeEventSubscriptionRequest = "EventSubscriptionRequest"
)

// ========================= коды ошибок =========================

// ErrorCode — код из конверта APIError.
type ErrorCode int

const (
	ErrorCodeNone ErrorCode = 0

	ErrorCodeInvalidRequest                    ErrorCode = 1
	ErrorCodeRequestedItemNotFound             ErrorCode = 2
	ErrorCodeMissingParameterInRequest         ErrorCode = 3
	ErrorCodeRequestedItemIsDeactivated        ErrorCode = 4
	ErrorCodeRequestedItemIsAlreadyInThatState ErrorCode = 5
	ErrorCodeGenericError                      ErrorCode = 6

	ErrorCodeAuthenticationTokenMissing               ErrorCode = 100
	ErrorCodeAuthenticationTokenInvalid               ErrorCode = 101
	ErrorCodeAuthenticationTokenRequestDenied         ErrorCode = 102
	ErrorCodeAuthenticationTokenRequestTimedOut       ErrorCode = 103
	ErrorCodeAuthenticationTokenRequestAlreadyHandled ErrorCode = 104

	ErrorCodeModelNotFound      ErrorCode = 200
	ErrorCodeModelFileInvalid   ErrorCode = 201
	ErrorCodeModelAlreadyLoaded ErrorCode = 202
	ErrorCodeModelLoadTimedOut  ErrorCode = 203
	ErrorCodeModelLoadCancelled ErrorCode = 204
	ErrorCodeModelLoadFailed    ErrorCode = 205

	ErrorCodeHotkeyNotFound      ErrorCode = 300
	ErrorCodeHotkeyTriggerFailed ErrorCode = 301

	ErrorCodeExpressionNotFound         ErrorCode = 400
	ErrorCodeExpressionActivationFailed ErrorCode = 401

	ErrorCodeArtMeshNotFound ErrorCode = 500
	ErrorCodeColorTintFailed ErrorCode = 501

	ErrorCodeItemNotFound          ErrorCode = 600
	ErrorCodeItemLoadFailed        ErrorCode = 601
	ErrorCodeItemUnloadFailed      ErrorCode = 602
	ErrorCodeItemAnimationNotFound ErrorCode = 603
	ErrorCodeItemAnimationFailed   ErrorCode = 604
)

// ErrorData — полезная нагрузка конверта APIError (и ответов-отказов).
type ErrorData struct {
	ErrorID ErrorCode `json:"errorID"`
	Message string    `json:"message"`
}

// ========================= аутентификация =========================

type AuthenticationTokenRequestData struct {
	PluginName      string `json:"pluginName"`
	PluginDeveloper string `json:"pluginDeveloper"`
	PluginIcon      string `json:"pluginIcon,omitempty"`
}

type AuthenticationTokenResponseData struct {
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationRequestData struct {
	PluginName          string `json:"pluginName"`
	PluginDeveloper     string `json:"pluginDeveloper"`
	AuthenticationToken string `json:"authenticationToken"`
}

type AuthenticationResponseData struct {
	Authenticated bool   `json:"authenticated"`
	Reason        string `json:"reason,omitempty"`
}

// ========================= статус и модели =========================

type StatisticsResponseData struct {
	Uptime             int64  `json:"uptime"`
	Framerate          int    `json:"framerate"`
	VTubeStudioVersion string `json:"vTubeStudioVersion"`
	AllowedPlugins     int    `json:"allowedPlugins"`
	ConnectedPlugins   int    `json:"connectedPlugins"`
	StartedWithSteam   bool   `json:"startedWithSteam"`
	WindowWidth        int    `json:"windowWidth"`
	WindowHeight       int    `json:"windowHeight"`
	WindowIsFullscreen bool   `json:"windowIsFullscreen"`
}

type VTSFolderInfoResponseData struct {
	Models       string `json:"models"`
	Backgrounds  string `json:"backgrounds"`
	Items        string `json:"items"`
	Config       string `json:"config"`
	Logs         string `json:"logs"`
	BackupFolder string `json:"backup"`
}

type ModelPosition struct {
	PositionX float64 `json:"positionX"`
	PositionY float64 `json:"positionY"`
	Rotation  float64 `json:"rotation"`
	Size      float64 `json:"size"`
}

type CurrentModelResponseData struct {
	ModelLoaded              bool          `json:"modelLoaded"`
	ModelName                string        `json:"modelName"`
	ModelID                  string        `json:"modelID"`
	VTSModelName             string        `json:"vtsModelName"`
	VTSModelIconName         string        `json:"vtsModelIconName"`
	Live2DModelName          string        `json:"live2DModelName"`
	ModelLoadTime            int64         `json:"modelLoadTime"`
	TimeSinceModelLoaded     int64         `json:"timeSinceModelLoaded"`
	NumberOfLive2DParameters int           `json:"numberOfLive2DParameters"`
	NumberOfLive2DArtmeshes  int           `json:"numberOfLive2DArtmeshes"`
	HasPhysicsFile           bool          `json:"hasPhysicsFile"`
	NumberOfTextures         int           `json:"numberOfTextures"`
	TextureResolution        int           `json:"textureResolution"`
	ModelPosition            ModelPosition `json:"modelPosition"`
}

type AvailableModel struct {
	ModelLoaded      bool   `json:"modelLoaded"`
	ModelName        string `json:"modelName"`
	ModelID          string `json:"modelID"`
	VTSModelName     string `json:"vtsModelName"`
	VTSModelIconName string `json:"vtsModelIconName"`
}

type AvailableModelsResponseData struct {
	NumberOfModels  int              `json:"numberOfModels"`
	AvailableModels []AvailableModel `json:"availableModels"`
}

type ModelLoadRequestData struct {
	ModelID string `json:"modelID"`
}

type ModelLoadResponseData struct {
	ModelID string `json:"modelID"`
}

type MoveModelRequestData struct {
	TimeInSeconds            float64  `json:"timeInSeconds"`
	ValuesAreRelativeToModel bool     `json:"valuesAreRelativeToModel"`
	PositionX                *float64 `json:"positionX,omitempty"`
	PositionY                *float64 `json:"positionY,omitempty"`
	Rotation                 *float64 `json:"rotation,omitempty"`
	Size                     *float64 `json:"size,omitempty"`
}

type MoveModelResponseData struct{}

// ========================= хоткеи и экспрессии =========================

type Hotkey struct {
	Name             string   `json:"name"`
	Type             string   `json:"type"`
	Description      string   `json:"description"`
	File             string   `json:"file"`
	HotkeyID         string   `json:"hotkeyID"`
	KeyCombination   []string `json:"keyCombination"`
	OnScreenButtonID int      `json:"onScreenButtonID"`
}

type HotkeysInCurrentModelRequestData struct {
	ModelID            string `json:"modelID,omitempty"`
	Live2DItemFileName string `json:"live2DItemFileName,omitempty"`
}

type HotkeysInCurrentModelResponseData struct {
	ModelLoaded      bool     `json:"modelLoaded"`
	ModelName        string   `json:"modelName"`
	ModelID          string   `json:"modelID"`
	AvailableHotkeys []Hotkey `json:"availableHotkeys"`
}

type HotkeyTriggerRequestData struct {
	HotkeyID       string `json:"hotkeyID"`
	ItemInstanceID string `json:"itemInstanceID,omitempty"`
}

type HotkeyTriggerResponseData struct {
	HotkeyID string `json:"hotkeyID"`
}

type Expression struct {
	Name                       string  `json:"name"`
	File                       string  `json:"file"`
	Active                     bool    `json:"active"`
	DeactivateWhenKeyIsLetGo   bool    `json:"deactivateWhenKeyIsLetGo"`
	AutoDeactivateAfterSeconds bool    `json:"autoDeactivateAfterSeconds"`
	SecondsRemaining           float64 `json:"secondsRemaining"`
}

type ExpressionStateRequestData struct {
	Details        bool   `json:"details"`
	ExpressionFile string `json:"expressionFile,omitempty"`
}

type ExpressionStateResponseData struct {
	ModelLoaded bool         `json:"modelLoaded"`
	ModelName   string       `json:"modelName"`
	ModelID     string       `json:"modelID"`
	Expressions []Expression `json:"expressions"`
}

type ExpressionActivationRequestData struct {
	ExpressionFile string `json:"expressionFile"`
	Active         bool   `json:"active"`
}

type ExpressionActivationResponseData struct{}

// ========================= артмеши и параметры =========================

type ArtMeshListResponseData struct {
	ModelLoaded          bool     `json:"modelLoaded"`
	NumberOfArtMeshNames int      `json:"numberOfArtMeshNames"`
	NumberOfArtMeshTags  int      `json:"numberOfArtMeshTags"`
	ArtMeshNames         []string `json:"artMeshNames"`
	ArtMeshTags          []string `json:"artMeshTags"`
}

type FaceFoundResponseData struct {
	Found bool `json:"found"`
}

type Parameter struct {
	Name         string  `json:"name"`
	AddedBy      string  `json:"addedBy,omitempty"`
	Value        float64 `json:"value"`
	Min          float64 `json:"min"`
	Max          float64 `json:"max"`
	DefaultValue float64 `json:"defaultValue"`
}

type InputParameterListResponseData struct {
	ModelLoaded       bool        `json:"modelLoaded"`
	ModelName         string      `json:"modelName"`
	ModelID           string      `json:"modelID"`
	CustomParameters  []Parameter `json:"customParameters"`
	DefaultParameters []Parameter `json:"defaultParameters"`
}

type ParameterValueRequestData struct {
	Name string `json:"name"`
}

// ParameterValueResponseData — тот же Parameter, VTS возвращает его плоско.
type ParameterValueResponseData = Parameter

type Live2DParameterListResponseData struct {
	ModelLoaded bool        `json:"modelLoaded"`
	ModelName   string      `json:"modelName"`
	ModelID     string      `json:"modelID"`
	Parameters  []Parameter `json:"parameters"`
}

type ParameterCreationRequestData struct {
	ParameterName string  `json:"parameterName"`
	Explanation   string  `json:"explanation,omitempty"`
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	DefaultValue  float64 `json:"defaultValue"`
}

type ParameterCreationResponseData struct {
	ParameterName string `json:"parameterName"`
}

type ParameterDeletionRequestData struct {
	ParameterName string `json:"parameterName"`
}

type ParameterDeletionResponseData struct {
	ParameterName string `json:"parameterName"`
}

type ParameterValueInjection struct {
	ID     string   `json:"id"`
	Value  float64  `json:"value"`
	Weight *float64 `json:"weight,omitempty"`
}

type InjectParameterDataRequestData struct {
	FaceFound       bool                      `json:"faceFound"`
	Mode            string                    `json:"mode,omitempty"`
	ParameterValues []ParameterValueInjection `json:"parameterValues"`
}

type InjectParameterDataResponseData struct{}

// ========================= NDI и айтемы =========================

type NDIConfigRequestData struct {
	SetNewConfig        bool `json:"setNewConfig"`
	NDIActive           bool `json:"ndiActive"`
	UseNDI5             bool `json:"useNDI5"`
	UseCustomResolution bool `json:"useCustomResolution"`
	CustomWidthNDI      int  `json:"customWidthNDI"`
	CustomHeightNDI     int  `json:"customHeightNDI"`
}

type NDIConfigResponseData = NDIConfigRequestData

type ItemInstance struct {
	FileName        string  `json:"fileName"`
	InstanceID      string  `json:"instanceID"`
	Order           int     `json:"order"`
	Type            string  `json:"type"`
	Censored        bool    `json:"censored"`
	Flipped         bool    `json:"flipped"`
	Locked          bool    `json:"locked"`
	Smoothing       float64 `json:"smoothing"`
	Framerate       float64 `json:"framerate"`
	FrameCount      int     `json:"frameCount"`
	CurrentFrame    int     `json:"currentFrame"`
	PinnedToModel   bool    `json:"pinnedToModel"`
	PinnedModelID   string  `json:"pinnedModelID"`
	PinnedArtMeshID string  `json:"pinnedArtMeshID"`
}

type ItemFile struct {
	FileName    string `json:"fileName"`
	Type        string `json:"type"`
	LoadedCount int    `json:"loadedCount"`
}

type ItemListRequestData struct {
	IncludeAvailableSpots       bool   `json:"includeAvailableSpots"`
	IncludeItemInstancesInScene bool   `json:"includeItemInstancesInScene"`
	IncludeAvailableItemFiles   bool   `json:"includeAvailableItemFiles"`
	OnlyItemsWithFileName       string `json:"onlyItemsWithFileName,omitempty"`
	OnlyItemsWithInstanceID     string `json:"onlyItemsWithInstanceID,omitempty"`
}

type ItemListResponseData struct {
	ItemsInSceneCount      int            `json:"itemsInSceneCount"`
	TotalItemsAllowedCount int            `json:"totalItemsAllowedCount"`
	CanLoadItemsRightNow   bool           `json:"canLoadItemsRightNow"`
	AvailableSpots         []int          `json:"availableSpots"`
	ItemInstancesInScene   []ItemInstance `json:"itemInstancesInScene"`
	AvailableItemFiles     []ItemFile     `json:"availableItemFiles"`
}

type ItemLoadRequestData struct {
	FileName                    string  `json:"fileName"`
	PositionX                   float64 `json:"positionX"`
	PositionY                   float64 `json:"positionY"`
	Size                        float64 `json:"size"`
	Rotation                    float64 `json:"rotation"`
	FadeTime                    float64 `json:"fadeTime"`
	Order                       int     `json:"order"`
	FailIfOrderTaken            bool    `json:"failIfOrderTaken"`
	Smoothing                   float64 `json:"smoothing"`
	Censored                    bool    `json:"censored"`
	Flipped                     bool    `json:"flipped"`
	Locked                      bool    `json:"locked"`
	UnloadWhenPluginDisconnects bool    `json:"unloadWhenPluginDisconnects"`
}

type ItemLoadResponseData struct {
	InstanceID string `json:"instanceID"`
	FileName   string `json:"fileName"`
}

type ItemUnloadRequestData struct {
	UnloadAllInScene                              bool     `json:"unloadAllInScene"`
	UnloadAllLoadedByThisPlugin                   bool     `json:"unloadAllLoadedByThisPlugin"`
	AllowUnloadingItemsLoadedByUserOrOtherPlugins bool     `json:"allowUnloadingItemsLoadedByUserOrOtherPlugins"`
	InstanceIDs                                   []string `json:"instanceIDs,omitempty"`
	FileNames                                     []string `json:"fileNames,omitempty"`
}

type UnloadedItem struct {
	InstanceID string `json:"instanceID"`
	FileName   string `json:"fileName"`
}

type ItemUnloadResponseData struct {
	UnloadedItems []UnloadedItem `json:"unloadedItems"`
}

type ItemToMove struct {
	ItemInstanceID string  `json:"itemInstanceID"`
	TimeInSeconds  float64 `json:"timeInSeconds"`
	FadeMode       string  `json:"fadeMode,omitempty"`
	PositionX      float64 `json:"positionX"`
	PositionY      float64 `json:"positionY"`
	Size           float64 `json:"size"`
	Rotation       float64 `json:"rotation"`
	Order          int     `json:"order"`
	SetFlip        bool    `json:"setFlip"`
	Flip           bool    `json:"flip"`
	UserCanStop    bool    `json:"userCanStop"`
}

type ItemMoveRequestData struct {
	ItemsToMove []ItemToMove `json:"itemsToMove"`
}

type MovedItem struct {
	ItemInstanceID string `json:"itemInstanceID"`
	Success        bool   `json:"success"`
	ErrorID        int    `json:"errorID"`
}

type ItemMoveResponseData struct {
	MovedItems []MovedItem `json:"movedItems"`
}

// ========================= подписка на события =========================

type EventSubscriptionRequestData struct {
	EventName string          `json:"eventName,omitempty"`
	Subscribe bool            `json:"subscribe"`
	Config    json.RawMessage `json:"config,omitempty"`
}

type EventSubscriptionResponseData struct {
	SubscribedEventCount int      `json:"subscribedEventCount"`
	SubscribedEvents     []string `json:"subscribedEvents"`
}

// Виды событий, которые VTube Studio пушит без корреляции с запросом.
const (
	EventTypeTest                        = "TestEvent"
	EventTypeModelLoaded                 = "ModelLoadedEvent"
	EventTypeTrackingStatusChanged       = "TrackingStatusChangedEvent"
	EventTypeBackgroundChanged           = "BackgroundChangedEvent"
	EventTypeModelConfigChanged          = "ModelConfigChangedEvent"
	EventTypeModelMoved                  = "ModelMovedEvent"
	EventTypeModelOutline                = "ModelOutlineEvent"
	EventTypeHotkeyTriggered             = "HotkeyTriggeredEvent"
	EventTypeModelAnimation              = "ModelAnimationEvent"
	EventTypeItem                        = "ItemEvent"
	EventTypeModelClicked                = "ModelClickedEvent"
	EventTypePostProcessing              = "PostProcessingEvent"
	EventTypeLive2DCubismEditorConnected = "Live2DCubismEditorConnectedEvent"
)

// Значения animationEventType в ModelAnimationEvent.
const (
	AnimationEventCustom = "Custom"
	AnimationEventStart  = "Start"
	AnimationEventEnd    = "End"
)

// Значения itemEventType в ItemEvent.
const (
	ItemEventAdded           = "Added"
	ItemEventRemoved         = "Removed"
	ItemEventDroppedPinned   = "DroppedPinned"
	ItemEventDroppedUnpinned = "DroppedUnpinned"
	ItemEventClicked         = "Clicked"
	ItemEventLocked          = "Locked"
	ItemEventUnlocked        = "Unlocked"
)

// Кнопки мыши в ModelClickedEvent.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// Vec2 — точка или размер (позиция клика, размер окна, вершина контура).
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type TestEventConfig struct {
	TestMessageForEvent string `json:"testMessageForEvent,omitempty"`
}

type TestEventData struct {
	YourTestMessage string `json:"yourTestMessage"`
	Counter         int64  `json:"counter"`
}

type ModelLoadedEventConfig struct {
	ModelID []string `json:"modelID,omitempty"`
}

type ModelLoadedEventData struct {
	ModelLoaded bool   `json:"modelLoaded"`
	ModelName   string `json:"modelName"`
	ModelID     string `json:"modelID"`
}

type TrackingStatusChangedEventData struct {
	FaceFound      bool `json:"faceFound"`
	LeftHandFound  bool `json:"leftHandFound"`
	RightHandFound bool `json:"rightHandFound"`
}

type BackgroundChangedEventData struct {
	BackgroundName string `json:"backgroundName"`
}

type ModelConfigChangedEventData struct {
	ModelID             string `json:"modelID"`
	ModelName           string `json:"modelName"`
	HotkeyConfigChanged bool   `json:"hotkeyConfigChanged"`
}

type ModelMovedEventData struct {
	ModelID       string        `json:"modelID"`
	ModelName     string        `json:"modelName"`
	ModelPosition ModelPosition `json:"modelPosition"`
}

type ModelOutlineEventConfig struct {
	Draw bool `json:"draw,omitempty"`
}

type ModelOutlineEventData struct {
	ModelID          string `json:"modelID"`
	ModelName        string `json:"modelName"`
	ConvexHull       []Vec2 `json:"convexHull"`
	ConvexHullCenter Vec2   `json:"convexHullCenter"`
	WindowSize       Vec2   `json:"windowSize"`
}

type HotkeyTriggeredEventConfig struct {
	OnlyForAction               string `json:"onlyForAction,omitempty"`
	IgnoreHotkeysTriggeredByAPI bool   `json:"ignoreHotkeysTriggeredByAPI"`
}

type HotkeyTriggeredEventData struct {
	HotkeyID             string `json:"hotkeyID"`
	HotkeyName           string `json:"hotkeyName"`
	HotkeyAction         string `json:"hotkeyAction"`
	HotkeyFile           string `json:"hotkeyFile"`
	HotkeyTriggeredByAPI bool   `json:"hotkeyTriggeredByAPI"`
	ModelID              string `json:"modelID"`
	ModelName            string `json:"modelName"`
	IsLive2DItem         bool   `json:"isLive2DItem"`
}

type ModelAnimationEventConfig struct {
	IgnoreLive2DItems    bool `json:"ignoreLive2DItems"`
	IgnoreIdleAnimations bool `json:"ignoreIdleAnimations"`
}

type ModelAnimationEventData struct {
	AnimationEventType string  `json:"animationEventType"`
	AnimationEventTime float64 `json:"animationEventTime"`
	AnimationEventData string  `json:"animationEventData"`
	AnimationName      string  `json:"animationName"`
	AnimationLength    float64 `json:"animationLength"`
	IsIdleAnimation    bool    `json:"isIdleAnimation"`
	ModelID            string  `json:"modelID"`
	ModelName          string  `json:"modelName"`
	IsLive2DItem       bool    `json:"isLive2DItem"`
}

type ItemEventConfig struct {
	ItemInstanceIDs []string `json:"itemInstanceIDs,omitempty"`
	ItemFileNames   []string `json:"itemFileNames,omitempty"`
}

type ItemEventData struct {
	ItemEventType  string `json:"itemEventType"`
	ItemInstanceID string `json:"itemInstanceID"`
	ItemFileName   string `json:"itemFileName"`
	ItemPosition   Vec2   `json:"itemPosition"`
}

type ModelClickedEventConfig struct {
	OnlyClicksOnModel bool `json:"onlyClicksOnModel"`
}

type HitInfo struct {
	ModelID       string  `json:"modelID"`
	ArtMeshID     string  `json:"artMeshID"`
	Angle         float64 `json:"angle"`
	Size          float64 `json:"size"`
	VertexID1     int     `json:"vertexID1"`
	VertexID2     int     `json:"vertexID2"`
	VertexID3     int     `json:"vertexID3"`
	VertexWeight1 float64 `json:"vertexWeight1"`
	VertexWeight2 float64 `json:"vertexWeight2"`
	VertexWeight3 float64 `json:"vertexWeight3"`
}

type ArtMeshHit struct {
	ArtMeshOrder int     `json:"artMeshOrder"`
	IsMasked     bool    `json:"isMasked"`
	HitInfo      HitInfo `json:"hitInfo"`
}

type ModelClickedEventData struct {
	ModelLoaded         bool         `json:"modelLoaded"`
	LoadedModelID       string       `json:"loadedModelID"`
	LoadedModelName     string       `json:"loadedModelName"`
	ModelWasClicked     bool         `json:"modelWasClicked"`
	MouseButtonID       int          `json:"mouseButtonID"`
	ClickPosition       Vec2         `json:"clickPosition"`
	WindowSize          Vec2         `json:"windowSize"`
	ClickedArtMeshCount int          `json:"clickedArtMeshCount"`
	ArtMeshHits         []ArtMeshHit `json:"artMeshHits"`
}

type PostProcessingEventData struct {
	CurrentState  bool   `json:"currentState"`
	CurrentPreset string `json:"currentPreset"`
}

type Live2DCubismEditorConnectedEventData struct {
	TryingToConnect      bool `json:"tryingToConnect"`
	Connected            bool `json:"connected"`
	ShouldSendParameters bool `json:"shouldSendParameters"`
}
