package vtsclient

import (
	"context"
	"encoding/json"
	"fmt"
)

// ========================= high-level API =========================

// doRequest — общий путь типизированных методов: конверт, ожидание,
// разбор data в ответную структуру.
func doRequest[T any](ctx context.Context, v *VTS, messageType string, data any) (*T, error) {
	env, err := v.SendRequest(ctx, messageType, data)
	if err != nil {
		return nil, err
	}
	var out T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &out); err != nil {
			return nil, fmt.Errorf("vtsclient: decode %s data: %w", env.MessageType, err)
		}
	}
	return &out, nil
}

// Statistics — текущее состояние VTube Studio (FPS, аптайм, плагины).
func (v *VTS) Statistics(ctx context.Context) (*StatisticsResponseData, error) {
	return doRequest[StatisticsResponseData](ctx, v, MessageTypeStatisticsRequest, nil)
}

// FolderInfo — пути рабочих папок VTube Studio.
func (v *VTS) FolderInfo(ctx context.Context) (*VTSFolderInfoResponseData, error) {
	return doRequest[VTSFolderInfoResponseData](ctx, v, MessageTypeVTSFolderInfoRequest, nil)
}

// CurrentModel — загруженная сейчас модель.
func (v *VTS) CurrentModel(ctx context.Context) (*CurrentModelResponseData, error) {
	return doRequest[CurrentModelResponseData](ctx, v, MessageTypeCurrentModelRequest, nil)
}

// AvailableModels — список всех доступных моделей.
func (v *VTS) AvailableModels(ctx context.Context) (*AvailableModelsResponseData, error) {
	return doRequest[AvailableModelsResponseData](ctx, v, MessageTypeAvailableModelsRequest, nil)
}

// LoadModel — загрузить модель по её ID.
func (v *VTS) LoadModel(ctx context.Context, modelID string) (*ModelLoadResponseData, error) {
	return doRequest[ModelLoadResponseData](ctx, v, MessageTypeModelLoadRequest, ModelLoadRequestData{ModelID: modelID})
}

// MoveModel — подвинуть/повернуть/масштабировать текущую модель.
func (v *VTS) MoveModel(ctx context.Context, data MoveModelRequestData) (*MoveModelResponseData, error) {
	return doRequest[MoveModelResponseData](ctx, v, MessageTypeMoveModelRequest, data)
}

// Hotkeys — хоткеи текущей (или указанной) модели.
func (v *VTS) Hotkeys(ctx context.Context, data HotkeysInCurrentModelRequestData) (*HotkeysInCurrentModelResponseData, error) {
	return doRequest[HotkeysInCurrentModelResponseData](ctx, v, MessageTypeHotkeysInCurrentModelRequest, data)
}

// TriggerHotkey — выполнить хоткей по ID или имени.
func (v *VTS) TriggerHotkey(ctx context.Context, hotkeyID string) (*HotkeyTriggerResponseData, error) {
	return doRequest[HotkeyTriggerResponseData](ctx, v, MessageTypeHotkeyTriggerRequest, HotkeyTriggerRequestData{HotkeyID: hotkeyID})
}

// ExpressionState — состояние экспрессий модели.
func (v *VTS) ExpressionState(ctx context.Context, data ExpressionStateRequestData) (*ExpressionStateResponseData, error) {
	return doRequest[ExpressionStateResponseData](ctx, v, MessageTypeExpressionStateRequest, data)
}

// ActivateExpression — включить/выключить экспрессию по файлу.
func (v *VTS) ActivateExpression(ctx context.Context, file string, active bool) (*ExpressionActivationResponseData, error) {
	return doRequest[ExpressionActivationResponseData](ctx, v, MessageTypeExpressionActivationRequest, ExpressionActivationRequestData{
		ExpressionFile: file,
		Active:         active,
	})
}

// ArtMeshList — имена и тэги артмешей текущей модели.
func (v *VTS) ArtMeshList(ctx context.Context) (*ArtMeshListResponseData, error) {
	return doRequest[ArtMeshListResponseData](ctx, v, MessageTypeArtMeshListRequest, nil)
}

// FaceFound — видит ли трекер лицо прямо сейчас.
func (v *VTS) FaceFound(ctx context.Context) (*FaceFoundResponseData, error) {
	return doRequest[FaceFoundResponseData](ctx, v, MessageTypeFaceFoundRequest, nil)
}

// InputParameterList — входные параметры трекинга (дефолтные и кастомные).
func (v *VTS) InputParameterList(ctx context.Context) (*InputParameterListResponseData, error) {
	return doRequest[InputParameterListResponseData](ctx, v, MessageTypeInputParameterListRequest, nil)
}

// ParameterValue — значение одного входного параметра.
func (v *VTS) ParameterValue(ctx context.Context, name string) (*ParameterValueResponseData, error) {
	return doRequest[ParameterValueResponseData](ctx, v, MessageTypeParameterValueRequest, ParameterValueRequestData{Name: name})
}

// Live2DParameterList — параметры Live2D текущей модели.
func (v *VTS) Live2DParameterList(ctx context.Context) (*Live2DParameterListResponseData, error) {
	return doRequest[Live2DParameterListResponseData](ctx, v, MessageTypeLive2DParameterListRequest, nil)
}

// CreateParameter — завести кастомный входной параметр.
func (v *VTS) CreateParameter(ctx context.Context, data ParameterCreationRequestData) (*ParameterCreationResponseData, error) {
	return doRequest[ParameterCreationResponseData](ctx, v, MessageTypeParameterCreationRequest, data)
}

// DeleteParameter — удалить кастомный входной параметр.
func (v *VTS) DeleteParameter(ctx context.Context, name string) (*ParameterDeletionResponseData, error) {
	return doRequest[ParameterDeletionResponseData](ctx, v, MessageTypeParameterDeletionRequest, ParameterDeletionRequestData{ParameterName: name})
}

// InjectParameterData — подать значения параметров (режим set/add).
func (v *VTS) InjectParameterData(ctx context.Context, data InjectParameterDataRequestData) (*InjectParameterDataResponseData, error) {
	return doRequest[InjectParameterDataResponseData](ctx, v, MessageTypeInjectParameterDataRequest, data)
}

// NDIConfig — прочитать либо изменить настройки NDI.
func (v *VTS) NDIConfig(ctx context.Context, data NDIConfigRequestData) (*NDIConfigResponseData, error) {
	return doRequest[NDIConfigResponseData](ctx, v, MessageTypeNDIConfigRequest, data)
}

// ItemList — айтемы в сцене и/или доступные файлы айтемов.
func (v *VTS) ItemList(ctx context.Context, data ItemListRequestData) (*ItemListResponseData, error) {
	return doRequest[ItemListResponseData](ctx, v, MessageTypeItemListRequest, data)
}

// LoadItem — добавить айтем в сцену.
func (v *VTS) LoadItem(ctx context.Context, data ItemLoadRequestData) (*ItemLoadResponseData, error) {
	return doRequest[ItemLoadResponseData](ctx, v, MessageTypeItemLoadRequest, data)
}

// UnloadItem — убрать айтемы из сцены.
func (v *VTS) UnloadItem(ctx context.Context, data ItemUnloadRequestData) (*ItemUnloadResponseData, error) {
	return doRequest[ItemUnloadResponseData](ctx, v, MessageTypeItemUnloadRequest, data)
}

// MoveItem — подвинуть айтемы в сцене.
func (v *VTS) MoveItem(ctx context.Context, data ItemMoveRequestData) (*ItemMoveResponseData, error) {
	return doRequest[ItemMoveResponseData](ctx, v, MessageTypeItemMoveRequest, data)
}

// SubscribeEvent — подписаться у сервера на вид события. config — его
// типизированная конфигурация (TestEventConfig и т.п.), nil — без неё.
// Локальный обработчик регистрируется отдельно через OnEvent.
func (v *VTS) SubscribeEvent(ctx context.Context, eventName string, config any) (*EventSubscriptionResponseData, error) {
	data := EventSubscriptionRequestData{EventName: eventName, Subscribe: true}
	if config != nil {
		raw, err := json.Marshal(config)
		if err != nil {
			return nil, fmt.Errorf("vtsclient: encode %s config: %w", eventName, err)
		}
		data.Config = raw
	}
	return doRequest[EventSubscriptionResponseData](ctx, v, MessageTypeEventSubscriptionRequest, data)
}

// UnsubscribeEvent — отписаться от вида события; пустой eventName
// отписывает от всех.
func (v *VTS) UnsubscribeEvent(ctx context.Context, eventName string) (*EventSubscriptionResponseData, error) {
	return doRequest[EventSubscriptionResponseData](ctx, v, MessageTypeEventSubscriptionRequest, EventSubscriptionRequestData{
		EventName: eventName,
		Subscribe: false,
	})
}
